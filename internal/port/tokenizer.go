package port

import "textlens/internal/domain"

type Tokenizer interface {
	Tokenize(text string) domain.TokenSet

	// Terms returns lower-cased, punctuation-free terms for frequency counting.
	Terms(text string) []string

	// Normalize folds a single word for lexicon lookup.
	Normalize(word string) string
}
