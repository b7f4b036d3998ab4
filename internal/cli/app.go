package cli

import (
	"fmt"

	"textlens/config"
	"textlens/internal/adapter/lexicon"
	"textlens/internal/adapter/remote"
	"textlens/internal/logger"
	"textlens/internal/usecase"
)

// newAnalyzeUseCase loads the lexicon and the remote analyzer named by cfg.
// withRemote=false skips the remote analyzer entirely.
func newAnalyzeUseCase(cfg *config.Config, withRemote bool) (*usecase.AnalyzeUseCase, error) {
	lex, err := lexicon.Open(cfg.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	stats := lex.Stats()
	logger.Log.WithField("source", cfg.Lexicon.Source).
		WithField("positive", stats.Positive).
		WithField("negative", stats.Negative).
		Debug("Lexicon loaded")

	if !withRemote {
		return usecase.NewAnalyzeUseCase(cfg, lex, nil, logger.Log), nil
	}

	ra, err := remote.New(cfg.Remote, logger.Log)
	if err != nil {
		// The core works without the remote path.
		logger.Log.WithError(err).Warn("Remote analyzer unavailable, using local analysis only")
	}
	return usecase.NewAnalyzeUseCase(cfg, lex, ra, logger.Log), nil
}
