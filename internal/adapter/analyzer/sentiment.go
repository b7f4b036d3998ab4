package analyzer

import (
	"math"

	"textlens/config"
	"textlens/internal/domain"
	"textlens/internal/port"
)

// SentimentClassifier labels text by counting lexicon marker words.
type SentimentClassifier struct {
	tokenizer       port.Tokenizer
	lexicon         port.Lexicon
	strongThreshold int
	neutralVotes    bool
}

// NewSentimentClassifier creates a classifier.
func NewSentimentClassifier(tokenizer port.Tokenizer, lexicon port.Lexicon, cfg config.SentimentConfig) *SentimentClassifier {
	return &SentimentClassifier{
		tokenizer:       tokenizer,
		lexicon:         lexicon,
		strongThreshold: cfg.StrongThreshold,
		neutralVotes:    cfg.NeutralVotes,
	}
}

// markerHits collects matched marker words, each once, in text order.
type markerHits struct {
	count int
	words []string
	seen  map[string]struct{}
}

func (h *markerHits) add(word string) {
	h.count++
	if h.seen == nil {
		h.seen = make(map[string]struct{})
	}
	if _, ok := h.seen[word]; ok {
		return
	}
	h.seen[word] = struct{}{}
	h.words = append(h.words, word)
}

// Classify counts marker words in text and derives label, confidence and
// explanation. keywords feed the topic clause of the explanation.
func (c *SentimentClassifier) Classify(text string, keywords []string) domain.SentimentResult {
	var pos, neg, neut markerHits

	for _, raw := range c.tokenizer.Tokenize(text).Words {
		w := c.tokenizer.Normalize(raw)
		if w == "" {
			continue
		}
		switch {
		case c.lexicon.IsPositive(w):
			pos.add(w)
		case c.lexicon.IsNegative(w):
			neg.add(w)
		case c.lexicon.IsNeutral(w):
			neut.add(w)
		}
	}

	label := c.label(pos.count, neg.count, neut.count)

	confidence := 0
	if total := pos.count + neg.count; total > 0 {
		confidence = int(math.Round(float64(max(pos.count, neg.count)) / float64(total) * 100))
	}

	matched := make([]string, 0, len(pos.words)+len(neg.words))
	matched = append(matched, pos.words...)
	matched = append(matched, neg.words...)

	return domain.SentimentResult{
		Label:       label,
		Confidence:  confidence,
		Explanation: c.explain(label, &pos, &neg, &neut, keywords),
		Positive:    pos.count,
		Negative:    neg.count,
		Neutral:     neut.count,
		Matched:     matched,
	}
}

func (c *SentimentClassifier) label(pos, neg, neut int) domain.Sentiment {
	switch {
	case pos > neg && (!c.neutralVotes || pos > neut):
		return domain.Positive
	case neg > pos && (!c.neutralVotes || neg > neut):
		return domain.Negative
	default:
		return domain.Neutral
	}
}
