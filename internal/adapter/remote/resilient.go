package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slok/goresilience"
	"github.com/slok/goresilience/circuitbreaker"
	gerrors "github.com/slok/goresilience/errors"
	"github.com/slok/goresilience/timeout"
	"golang.org/x/time/rate"

	"textlens/config"
	"textlens/internal/domain"
	"textlens/internal/port"
)

// ErrRateLimited is wrapped into the RemoteError returned when the request
// budget is spent.
var ErrRateLimited = errors.New("request budget exhausted")

// Resilient bounds calls to an inner analyzer with a request budget, a
// timeout and a circuit breaker. Panics in the inner analyzer surface as
// errors.
type Resilient struct {
	inner   port.RemoteAnalyzer
	runner  goresilience.Runner
	limiter *rate.Limiter
	log     *logrus.Logger
}

// NewResilient wraps inner using the limits in cfg.
func NewResilient(inner port.RemoteAnalyzer, cfg config.RemoteConfig, log *logrus.Logger) *Resilient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), burst)
	}

	middlewares := []goresilience.Middleware{
		timeout.NewMiddleware(timeout.Config{Timeout: cfg.Timeout}),
	}
	if cfg.BreakerMinRequests > 0 {
		middlewares = append(middlewares, circuitbreaker.NewMiddleware(circuitbreaker.Config{
			ErrorPercentThresholdToOpen:        cfg.BreakerErrorPercent,
			MinimumRequestToOpen:               cfg.BreakerMinRequests,
			SuccessfulRequiredOnHalfOpen:       1,
			WaitDurationInOpenState:            cfg.BreakerOpenFor,
			MetricsSlidingWindowBucketQuantity: 10,
			MetricsBucketDuration:              time.Second,
		}))
	}

	return &Resilient{
		inner:   inner,
		runner:  goresilience.RunnerChain(middlewares...),
		limiter: limiter,
		log:     log,
	}
}

// Name returns the wrapped provider name.
func (r *Resilient) Name() string {
	return r.inner.Name()
}

// Analyze calls the inner analyzer when the budget and breaker allow it.
func (r *Resilient) Analyze(ctx context.Context, text string) (domain.RemoteAnalysis, error) {
	if !r.limiter.Allow() {
		return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "rate limit", Err: ErrRateLimited}
	}

	var result domain.RemoteAnalysis
	err := r.runner.Run(ctx, func(ctx context.Context) (runErr error) {
		defer func() {
			if p := recover(); p != nil {
				runErr = fmt.Errorf("panic recovered: %v", p)
			}
		}()
		res, err := r.inner.Analyze(ctx, text)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		if errors.Is(err, gerrors.ErrCircuitOpen) {
			r.log.WithField("provider", r.inner.Name()).Warn("Remote circuit open, skipping call")
			return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "circuit", Err: err}
		}
		var remoteErr *domain.RemoteError
		if errors.As(err, &remoteErr) {
			return domain.RemoteAnalysis{}, err
		}
		return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "call", Err: err}
	}
	return result, nil
}
