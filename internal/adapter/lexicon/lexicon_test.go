package lexicon

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textlens/config"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Yaxshi", "yaxshi"},
		{"zo‘r", "zo'r"},
		{"ZOʻR!", "zo'r"},
		{"g’urur,", "g'urur"},
		{"\"ajoyib\".", "ajoyib"},
		{"...", ""},
		{"2024-yil", "2024-yil"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Fold(tt.input), "Fold(%q)", tt.input)
	}
}

func TestBuiltin(t *testing.T) {
	lex := Builtin()

	assert.True(t, lex.IsPositive("ajoyib"))
	assert.True(t, lex.IsPositive("zo'r"))
	assert.True(t, lex.IsNegative("yomon"))
	assert.True(t, lex.IsNeutral("oddiy"))
	assert.True(t, lex.IsStopword("bilan"))
	assert.False(t, lex.IsPositive("yomon"))
	assert.False(t, lex.IsStopword("ajoyib"))

	stats := lex.Stats()
	assert.Equal(t, 18, stats.Positive)
	assert.Equal(t, 18, stats.Negative)
}

func TestNew_FoldsEntries(t *testing.T) {
	lex := New(Data{Positive: []string{"  Zo‘r ", ""}, Stopwords: []string{"VA"}})

	assert.True(t, lex.IsPositive("zo'r"))
	assert.True(t, lex.IsStopword("va"))
	assert.Equal(t, 1, lex.Stats().Positive)
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, SaveFile(path, Builtin().Data()))

	lex, err := Open(config.LexiconConfig{Source: config.LexiconFile, Path: path})
	require.NoError(t, err)
	assert.Equal(t, Builtin().Stats(), lex.Stats())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Data{Positive: []string{"ajoyib"}, Negative: []string{"yomon"}}))
	assert.Contains(t, buf.String(), "positive:\n  - ajoyib\n")
	assert.Contains(t, buf.String(), "negative:\n  - yomon\n")
}

func TestBoltStore_ImportLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	st, err := NewBoltStore(path)
	require.NoError(t, err)

	require.NoError(t, st.Import(Data{
		Positive:  []string{"quvonch", "Baxt"},
		Negative:  []string{"g‘azab"},
		Stopwords: []string{"va"},
	}, "test"))

	// A second import replaces the first.
	require.NoError(t, st.Import(Data{
		Positive:  []string{"omad", "baxt"},
		Negative:  []string{"g'azab"},
		Stopwords: []string{"va", "bilan"},
	}, "test-2"))

	d, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"baxt", "omad"}, d.Positive)
	assert.Equal(t, []string{"g'azab"}, d.Negative)
	assert.Empty(t, d.Neutral)

	info, err := st.Info()
	require.NoError(t, err)
	assert.Equal(t, 2, info.Positive)
	assert.Equal(t, 2, info.Stopwords)
	assert.Equal(t, "test-2", info.Source)
	assert.NotEmpty(t, info.ImportedAt)
	require.NoError(t, st.Close())

	lex, err := Open(config.LexiconConfig{Source: config.LexiconBolt, Path: path})
	require.NoError(t, err)
	assert.True(t, lex.IsPositive("omad"))
	assert.False(t, lex.IsPositive("quvonch"))
}

func TestOpen_EmptyBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	_, err := Open(config.LexiconConfig{Source: config.LexiconBolt, Path: path})
	assert.Error(t, err)
}

func TestOpen_UnknownSource(t *testing.T) {
	_, err := Open(config.LexiconConfig{Source: "redis"})
	assert.Error(t, err)
}
