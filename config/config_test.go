package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.MaxChars != 5000 {
		t.Errorf("expected MaxChars=5000, got %d", cfg.Analysis.MaxChars)
	}
	if cfg.Keywords.Limit != 5 {
		t.Errorf("expected Keywords.Limit=5, got %d", cfg.Keywords.Limit)
	}
	if cfg.Keywords.MinShare != 0.005 {
		t.Errorf("expected MinShare=0.005, got %f", cfg.Keywords.MinShare)
	}
	if cfg.Remote.Enabled {
		t.Error("expected remote analyzer to be disabled by default")
	}
	if cfg.Remote.Timeout != 10*time.Second {
		t.Errorf("expected Remote.Timeout=10s, got %s", cfg.Remote.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textlens.yaml")

	content := `
analysis:
  max_chars: 1000
keywords:
  limit: 3
remote:
  enabled: true
  endpoint: https://api.example.com/analyze
  timeout: 2s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.MaxChars != 1000 {
		t.Errorf("expected MaxChars=1000, got %d", cfg.Analysis.MaxChars)
	}
	if cfg.Keywords.Limit != 3 {
		t.Errorf("expected Keywords.Limit=3, got %d", cfg.Keywords.Limit)
	}
	if cfg.Keywords.MinLength != 4 {
		t.Errorf("expected MinLength default 4 to survive, got %d", cfg.Keywords.MinLength)
	}
	if cfg.Remote.Timeout != 2*time.Second {
		t.Errorf("expected Remote.Timeout=2s, got %s", cfg.Remote.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero max chars", "analysis:\n  max_chars: 0\n"},
		{"unknown density", "readability:\n  density: words\n"},
		{"remote without endpoint", "remote:\n  enabled: true\n"},
		{"file lexicon without path", "lexicon:\n  source: file\n"},
		{"bad endpoint", "remote:\n  endpoint: not a url\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "textlens.yaml")
		if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureDataDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".textlens", "config.yaml")

	content := `
batch:
  workers: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Batch.Workers != 8 {
		t.Errorf("expected Workers=8, got %d", cfg.Batch.Workers)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textlens.yaml")
	cfg := DefaultConfig()
	cfg.Sentiment.NeutralVotes = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded.Sentiment.NeutralVotes {
		t.Error("expected NeutralVotes=true after round trip")
	}
	if loaded.Remote.BreakerOpenFor != 30*time.Second {
		t.Errorf("expected BreakerOpenFor=30s, got %s", loaded.Remote.BreakerOpenFor)
	}
}

func TestLexiconDBPath(t *testing.T) {
	path := LexiconDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".textlens", "lexicon.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
