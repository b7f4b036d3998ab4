package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"textlens/config"
	"textlens/internal/domain"
	"textlens/internal/port"
)

// Static always returns the same analysis.
type Static struct {
	Result domain.RemoteAnalysis
}

// Name returns "static".
func (s *Static) Name() string { return "static" }

// Analyze returns s.Result.
func (s *Static) Analyze(_ context.Context, _ string) (domain.RemoteAnalysis, error) {
	return s.Result, nil
}

// Failing always returns Err, or a generic unavailable error.
type Failing struct {
	Err error
}

// Name returns "failing".
func (f *Failing) Name() string { return "failing" }

// Analyze returns a RemoteError.
func (f *Failing) Analyze(_ context.Context, _ string) (domain.RemoteAnalysis, error) {
	err := f.Err
	if err == nil {
		err = errors.New("service unavailable")
	}
	return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "call", Err: err}
}

// Mock answers offline with a fixed neutral analysis. It backs the "mock"
// provider so the remote path can be exercised without a network.
type Mock struct{}

// Name returns "mock".
func (m *Mock) Name() string { return config.ProviderMock }

// Analyze returns a neutral analysis that mentions the text length.
func (m *Mock) Analyze(ctx context.Context, text string) (domain.RemoteAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "call", Err: err}
	}
	return domain.RemoteAnalysis{
		Sentiment:   domain.Neutral.Label(),
		Confidence:  0.5,
		Explanation: fmt.Sprintf("Sinov rejimi: %d belgili matn tahlil qilinmadi.", len([]rune(text))),
		Topic:       "Sinov tahlili",
	}, nil
}

// New builds the configured remote analyzer wrapped in Resilient. It
// returns nil when the remote path is disabled.
func New(cfg config.RemoteConfig, log *logrus.Logger) (port.RemoteAnalyzer, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var inner port.RemoteAnalyzer
	switch cfg.Provider {
	case config.ProviderMock:
		inner = &Mock{}
	case config.ProviderHTTP, "":
		a, err := NewHTTPAnalyzer(cfg)
		if err != nil {
			return nil, err
		}
		inner = a
	default:
		return nil, fmt.Errorf("unknown remote provider: %s", cfg.Provider)
	}
	return NewResilient(inner, cfg, log), nil
}
