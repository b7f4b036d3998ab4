package port

import (
	"context"

	"textlens/internal/domain"
)

// RemoteAnalyzer delegates sentiment and topic detection to an external service.
type RemoteAnalyzer interface {
	// Analyze returns the remote verdict or a *domain.RemoteError.
	Analyze(ctx context.Context, text string) (domain.RemoteAnalysis, error)

	// Name identifies the backing service in logs.
	Name() string
}
