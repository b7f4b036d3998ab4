package port

// Lexicon answers case-insensitive membership questions for marker words.
// Implementations are read-only after construction and safe for concurrent use.
type Lexicon interface {
	IsPositive(word string) bool
	IsNegative(word string) bool
	IsNeutral(word string) bool
	IsStopword(word string) bool
}
