package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Lexicon sources.
const (
	LexiconBuiltin = "builtin"
	LexiconFile    = "file"
	LexiconBolt    = "bolt"
)

// Remote providers.
const (
	ProviderHTTP = "http"
	ProviderMock = "mock"
)

// Readability density proxies.
const (
	DensitySyllables  = "syllables"
	DensityCharacters = "characters"
)

// Config holds all configuration for textlens.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Keywords    KeywordsConfig    `yaml:"keywords"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Readability ReadabilityConfig `yaml:"readability"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Remote      RemoteConfig      `yaml:"remote"`
	Server      ServerConfig      `yaml:"server"`
	Batch       BatchConfig       `yaml:"batch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AnalysisConfig holds input validation limits.
type AnalysisConfig struct {
	MaxChars       int      `yaml:"max_chars" validate:"gt=0"` // non-whitespace characters
	Interrogatives []string `yaml:"interrogatives"`
}

// KeywordsConfig holds keyword extraction parameters.
type KeywordsConfig struct {
	Limit     int     `yaml:"limit" validate:"gt=0"`
	MinLength int     `yaml:"min_length" validate:"gte=1"`
	MinShare  float64 `yaml:"min_share" validate:"gte=0,lt=1"` // keywords need a share strictly above this
}

// SentimentConfig holds sentiment classification parameters.
type SentimentConfig struct {
	StrongThreshold int  `yaml:"strong_threshold" validate:"gte=0"` // more matches than this reads as "strongly"
	NeutralVotes    bool `yaml:"neutral_votes"`                     // neutral markers compete in the label decision
}

// ReadabilityConfig holds readability parameters.
type ReadabilityConfig struct {
	Density string `yaml:"density" validate:"oneof=syllables characters"`
}

// LexiconConfig selects where the lexicon is loaded from.
type LexiconConfig struct {
	Source string `yaml:"source" validate:"oneof=builtin file bolt"`
	Path   string `yaml:"path"`
}

// RemoteConfig holds remote analyzer configuration.
type RemoteConfig struct {
	Enabled             bool          `yaml:"enabled"`
	Provider            string        `yaml:"provider" validate:"oneof=http mock"`
	Endpoint            string        `yaml:"endpoint" validate:"omitempty,url"`
	APIKeyEnv           string        `yaml:"api_key_env"` // Environment variable for API key
	Timeout             time.Duration `yaml:"timeout" validate:"gt=0"`
	RequestsPerMinute   int           `yaml:"requests_per_minute" validate:"gte=0"` // 0 = unlimited
	Burst               int           `yaml:"burst" validate:"gte=0"`
	BreakerErrorPercent int           `yaml:"breaker_error_percent" validate:"gte=0,lte=100"`
	BreakerMinRequests  int           `yaml:"breaker_min_requests" validate:"gte=0"`
	BreakerOpenFor      time.Duration `yaml:"breaker_open_for"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr    string `yaml:"addr" validate:"required"`
	Metrics bool   `yaml:"metrics"`
	CORS    bool   `yaml:"cors"`
}

// BatchConfig holds batch analysis configuration.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MaxChars:       5000,
			Interrogatives: []string{"nima", "qanday", "qachon", "nega"},
		},
		Keywords: KeywordsConfig{
			Limit:     5,
			MinLength: 4,
			MinShare:  0.005,
		},
		Sentiment: SentimentConfig{
			StrongThreshold: 3,
			NeutralVotes:    false,
		},
		Readability: ReadabilityConfig{
			Density: DensitySyllables,
		},
		Lexicon: LexiconConfig{
			Source: LexiconBuiltin,
		},
		Remote: RemoteConfig{
			Enabled:             false, // Disabled by default (requires API key)
			Provider:            ProviderHTTP,
			APIKeyEnv:           "XAI_API_KEY",
			Timeout:             10 * time.Second,
			RequestsPerMinute:   60,
			Burst:               5,
			BreakerErrorPercent: 50,
			BreakerMinRequests:  10,
			BreakerOpenFor:      30 * time.Second,
		},
		Server: ServerConfig{
			Addr:    ":5001",
			Metrics: true,
			CORS:    true,
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.pdf"},
			Excludes: []string{".git/**", "**/node_modules/**", ".textlens/**"},
			Workers:  4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textlens.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textlens.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textlens", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = validator.New()

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Remote.Enabled && c.Remote.Provider == ProviderHTTP && c.Remote.Endpoint == "" {
		return fmt.Errorf("remote.endpoint is required when the http remote analyzer is enabled")
	}
	if c.Lexicon.Source != LexiconBuiltin && c.Lexicon.Path == "" {
		return fmt.Errorf("lexicon.path is required for lexicon source %q", c.Lexicon.Source)
	}
	return nil
}

// LexiconDBPath returns the default path of the lexicon store.
func LexiconDBPath(dir string) string {
	return filepath.Join(dir, ".textlens", "lexicon.db")
}

// EnsureDataDir ensures the .textlens directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textlens"), 0755)
}
