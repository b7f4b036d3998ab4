// Package lexicon holds the marker word sets used by the local analyzers.
//
// A Lexicon is built once at process start from one of three sources (the
// built-in Uzbek lists, a YAML file, or a bbolt store) and never mutated
// afterwards, so a single instance is shared by every analysis call.
package lexicon

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"textlens/config"
)

// Data is the serialisable form of a lexicon.
type Data struct {
	Positive  []string `yaml:"positive" json:"positive"`
	Negative  []string `yaml:"negative" json:"negative"`
	Neutral   []string `yaml:"neutral,omitempty" json:"neutral,omitempty"`
	Stopwords []string `yaml:"stopwords" json:"stopwords"`
}

// Stats reports set sizes.
type Stats struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Neutral   int `json:"neutral"`
	Stopwords int `json:"stopwords"`
}

type set map[string]struct{}

func newSet(words []string) set {
	s := make(set, len(words))
	for _, w := range words {
		w = Fold(w)
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Lexicon is an immutable set of positive, negative, neutral and stop words.
// Lookups expect words already passed through Fold.
type Lexicon struct {
	positive  set
	negative  set
	neutral   set
	stopwords set
}

// New builds a Lexicon, folding every entry.
func New(d Data) *Lexicon {
	return &Lexicon{
		positive:  newSet(d.Positive),
		negative:  newSet(d.Negative),
		neutral:   newSet(d.Neutral),
		stopwords: newSet(d.Stopwords),
	}
}

func (l *Lexicon) IsPositive(word string) bool { return l.positive.has(word) }
func (l *Lexicon) IsNegative(word string) bool { return l.negative.has(word) }
func (l *Lexicon) IsNeutral(word string) bool  { return l.neutral.has(word) }
func (l *Lexicon) IsStopword(word string) bool { return l.stopwords.has(word) }

// Data returns a sorted copy of the sets.
func (l *Lexicon) Data() Data {
	return Data{
		Positive:  l.positive.sorted(),
		Negative:  l.negative.sorted(),
		Neutral:   l.neutral.sorted(),
		Stopwords: l.stopwords.sorted(),
	}
}

func (l *Lexicon) Stats() Stats {
	return Stats{
		Positive:  len(l.positive),
		Negative:  len(l.negative),
		Neutral:   len(l.neutral),
		Stopwords: len(l.stopwords),
	}
}

var apostrophes = strings.NewReplacer(
	"‘", "'", // ‘
	"’", "'", // ’
	"ʻ", "'", // ʻ
	"ʼ", "'", // ʼ
	"`", "'",
)

// Fold normalises a word for lookup: NFC, lower case, a single apostrophe
// form, and no leading or trailing punctuation.
func Fold(word string) string {
	w := norm.NFC.String(word)
	w = apostrophes.Replace(strings.ToLower(w))
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Open loads the lexicon named by cfg.
func Open(cfg config.LexiconConfig) (*Lexicon, error) {
	switch cfg.Source {
	case "", config.LexiconBuiltin:
		return Builtin(), nil
	case config.LexiconFile:
		d, err := LoadFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return New(d), nil
	case config.LexiconBolt:
		st, err := NewBoltStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		d, err := st.Load()
		if err != nil {
			return nil, err
		}
		if len(d.Positive) == 0 && len(d.Negative) == 0 {
			return nil, fmt.Errorf("lexicon store %s is empty, run 'textlens lexicon import' first", cfg.Path)
		}
		return New(d), nil
	}
	return nil, fmt.Errorf("unsupported lexicon source: %s", cfg.Source)
}
