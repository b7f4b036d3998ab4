package analyzer

import (
	"math"

	"textlens/config"
	"textlens/internal/domain"
	"textlens/internal/port"
)

// Flesch reading-ease coefficients.
const (
	fleschBase     = 206.835
	fleschSentence = 1.015
	fleschDensity  = 84.6
)

// ReadabilityScorer grades text with a Flesch-style reading-ease formula.
//
// The density term is either estimated syllables per word (vowel count, a
// close fit for Uzbek Latin orthography) or non-space characters per word.
// The character proxy drives almost every natural sentence below zero, so
// it is only useful for comparing texts against each other.
type ReadabilityScorer struct {
	tokenizer port.Tokenizer
	density   string
}

// NewReadabilityScorer creates a scorer using the configured density proxy.
func NewReadabilityScorer(tokenizer port.Tokenizer, cfg config.ReadabilityConfig) *ReadabilityScorer {
	density := cfg.Density
	if density == "" {
		density = config.DensitySyllables
	}
	return &ReadabilityScorer{tokenizer: tokenizer, density: density}
}

// Score tokenizes text and grades it.
func (s *ReadabilityScorer) Score(text string) domain.ReadabilityResult {
	return s.ScoreTokens(s.tokenizer.Tokenize(text))
}

// ScoreTokens grades an already tokenized text. Input without words or
// without a sentence fragment is graded Indeterminate with a zero score.
func (s *ReadabilityScorer) ScoreTokens(ts domain.TokenSet) domain.ReadabilityResult {
	words := ts.WordCount()
	if words == 0 || ts.SentenceCount == 0 {
		return domain.ReadabilityResult{Grade: domain.Indeterminate}
	}

	var density float64
	if s.density == config.DensityCharacters {
		density = float64(ts.CharCount) / float64(words)
	} else {
		syllables := 0
		for _, w := range ts.Words {
			syllables += countSyllables(s.tokenizer.Normalize(w))
		}
		density = float64(syllables) / float64(words)
	}

	score := fleschBase -
		fleschSentence*(float64(words)/float64(ts.SentenceCount)) -
		fleschDensity*density
	score = math.Round(score*100) / 100

	return domain.ReadabilityResult{Grade: gradeFor(score), Score: score}
}

func gradeFor(score float64) domain.ReadabilityGrade {
	switch {
	case score > 80:
		return domain.VeryEasy
	case score > 60:
		return domain.Easy
	case score > 40:
		return domain.Moderate
	default:
		return domain.Hard
	}
}

// countSyllables counts vowels; any word with letters or digits has at least one.
func countSyllables(word string) int {
	n := 0
	for _, r := range word {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	if n == 0 && hasAlnum(word) {
		return 1
	}
	return n
}
