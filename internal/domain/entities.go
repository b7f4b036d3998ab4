package domain

import "strings"

// TokenSet holds the surface tokens of one text.
type TokenSet struct {
	Words         []string
	SentenceCount int
	CharCount     int // whitespace excluded
}

// WordCount returns the number of whitespace-separated words.
func (t TokenSet) WordCount() int {
	return len(t.Words)
}

type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

var sentimentLabels = map[Sentiment]string{
	Positive: "ijobiy",
	Negative: "salbiy",
	Neutral:  "neytral",
}

// Label returns the Uzbek display label.
func (s Sentiment) Label() string {
	if l, ok := sentimentLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSentiment accepts canonical names and their Uzbek labels.
func ParseSentiment(s string) (Sentiment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive", "ijobiy":
		return Positive, true
	case "negative", "salbiy":
		return Negative, true
	case "neutral", "neytral", "neitral":
		return Neutral, true
	}
	return "", false
}

// SentimentResult is the lexicon-based classification of a text.
// Confidence is a lexical dominance ratio (0-100): the share of the larger
// of the positive/negative marker counts. It is not a probability.
type SentimentResult struct {
	Label       Sentiment `json:"label"`
	Confidence  int       `json:"confidence"`
	Explanation string    `json:"explanation"`
	Positive    int       `json:"positive"`
	Negative    int       `json:"negative"`
	Neutral     int       `json:"neutral"`
	Matched     []string  `json:"matched"`
}

type ReadabilityGrade string

const (
	VeryEasy      ReadabilityGrade = "very-easy"
	Easy          ReadabilityGrade = "easy"
	Moderate      ReadabilityGrade = "moderate"
	Hard          ReadabilityGrade = "hard"
	Indeterminate ReadabilityGrade = "indeterminate"
)

var gradeLabels = map[ReadabilityGrade]string{
	VeryEasy:      "juda oson",
	Easy:          "oson",
	Moderate:      "o'rtacha",
	Hard:          "qiyin",
	Indeterminate: "aniqlab bo'lmaydi",
}

// Label returns the Uzbek display label.
func (g ReadabilityGrade) Label() string {
	if l, ok := gradeLabels[g]; ok {
		return l
	}
	return string(g)
}

type ReadabilityResult struct {
	Grade ReadabilityGrade `json:"grade"`
	Score float64          `json:"score"`
}

type Stats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
}

type Origin string

const (
	OriginRemote Origin = "remote"
	OriginLocal  Origin = "local"
)

// AnalysisReport is the complete result of one analysis call. Remote and
// local reports share this shape; Origin and Partial tell them apart.
type AnalysisReport struct {
	Origin      Origin            `json:"origin"`
	Partial     bool              `json:"partial"`
	Stats       Stats             `json:"stats"`
	Sentiment   SentimentResult   `json:"sentiment"`
	Keywords    []string          `json:"keywords"`
	Topic       string            `json:"topic"`
	Readability ReadabilityResult `json:"readability"`
	Summary     string            `json:"summary"`
	Message     string            `json:"message"`
}

// RemoteAnalysis is what a remote analyzer returns. Confidence is in [0, 1].
type RemoteAnalysis struct {
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
	Topic       string  `json:"topic"`
}
