package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"textlens/internal/adapter/lexicon"
	"textlens/internal/domain"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s*`)

// Tokenizer splits text into words, sentences and terms. It is stateless.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text on whitespace runs and sentence terminators.
func (t *Tokenizer) Tokenize(text string) domain.TokenSet {
	return domain.TokenSet{
		Words:         strings.Fields(text),
		SentenceCount: countSentences(text),
		CharCount:     CountChars(text),
	}
}

// Terms lower-cases text, blanks out punctuation (apostrophes inside words
// survive) and returns the folded, non-empty terms.
func (t *Tokenizer) Terms(text string) []string {
	blanked := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) && !isApostrophe(r) {
			return ' '
		}
		return r
	}, text)

	fields := strings.Fields(blanked)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if term := lexicon.Fold(f); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Normalize folds a single word for lexicon lookup.
func (t *Tokenizer) Normalize(word string) string {
	return lexicon.Fold(word)
}

// CountChars counts non-whitespace runes.
func CountChars(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func countSentences(text string) int {
	n := 0
	for _, s := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '‘', '’':
		return true
	}
	return false
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
