package analyzer

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"textlens/config"
	"textlens/internal/port"
)

// KeywordExtractor ranks content terms by frequency.
type KeywordExtractor struct {
	tokenizer port.Tokenizer
	lexicon   port.Lexicon
	limit     int
	minLength int
	minShare  float64
}

// NewKeywordExtractor creates a keyword extractor.
func NewKeywordExtractor(tokenizer port.Tokenizer, lexicon port.Lexicon, cfg config.KeywordsConfig) *KeywordExtractor {
	return &KeywordExtractor{
		tokenizer: tokenizer,
		lexicon:   lexicon,
		limit:     cfg.Limit,
		minLength: cfg.MinLength,
		minShare:  cfg.MinShare,
	}
}

// Extract returns up to limit capitalised keywords, most frequent first.
// Equal counts keep first-seen order. The result is never nil.
func (e *KeywordExtractor) Extract(text string) []string {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, term := range e.tokenizer.Terms(text) {
		if utf8.RuneCountInString(term) < e.minLength {
			continue
		}
		if e.lexicon.IsStopword(term) || !hasAlnum(term) {
			continue
		}
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
		total++
	}

	keywords := make([]string, 0, e.limit)
	if total == 0 {
		return keywords
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > e.limit {
		order = order[:e.limit]
	}

	for _, term := range order {
		share := float64(counts[term]) / float64(total)
		if share <= e.minShare {
			continue
		}
		keywords = append(keywords, capitalize(term))
	}
	return keywords
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
