package analyzer

import (
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	ts := tok.Tokenize("Bugun ajoyib kun, men juda xursandman!")
	if ts.WordCount() != 6 {
		t.Errorf("expected 6 words, got %d: %v", ts.WordCount(), ts.Words)
	}
	if ts.SentenceCount != 1 {
		t.Errorf("expected 1 sentence, got %d", ts.SentenceCount)
	}
	if ts.CharCount != 33 {
		t.Errorf("expected 33 non-space chars, got %d", ts.CharCount)
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer()

	for _, input := range []string{"", "   \n\t "} {
		ts := tok.Tokenize(input)
		if ts.WordCount() != 0 || ts.SentenceCount != 0 || ts.CharCount != 0 {
			t.Errorf("expected zero counts for %q, got %+v", input, ts)
		}
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"Salom dunyo", 1},
		{"Bu yaxshi kun.", 1},
		{"Birinchi. Ikkinchi! Uchinchi?", 3},
		{"Kutib turing... Keldi!!!", 2},
		{"...", 0},
		{"!  .  ?", 0},
		{"Salom.Dunyo.", 2},
	}

	for _, tt := range tests {
		if got := countSentences(tt.input); got != tt.expected {
			t.Errorf("countSentences(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestCountChars_Unicode(t *testing.T) {
	if got := CountChars("zo‘r  g‘urur"); got != 10 {
		t.Errorf("expected 10 runes, got %d", got)
	}
}

func TestTokenizer_Terms(t *testing.T) {
	tok := NewTokenizer()

	terms := tok.Terms("O‘zbekiston — go'zal, (tinch) yurt; 2024-yil!")
	expected := []string{"o'zbekiston", "go'zal", "tinch", "yurt", "2024", "yil"}
	if len(terms) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, terms)
	}
	for i := range expected {
		if terms[i] != expected[i] {
			t.Errorf("term %d: expected %q, got %q", i, expected[i], terms[i])
		}
	}
}

func TestTokenizer_Normalize(t *testing.T) {
	tok := NewTokenizer()

	if got := tok.Normalize("Zo‘r!"); got != "zo'r" {
		t.Errorf("expected zo'r, got %q", got)
	}
}
