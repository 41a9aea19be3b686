package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BaSui01/formflow/types"
)

// ResilientConfig configures the resilience wrapper.
type ResilientConfig struct {
	// MaxRetries is the number of attempts after the first failure.
	MaxRetries int
	// InitialBackoff is doubled after each failed attempt.
	InitialBackoff time.Duration
	// Timeout bounds each individual attempt. An external oracle must not
	// be able to block the fallback path indefinitely.
	Timeout time.Duration
	// RequestsPerSecond rate-limits calls to the underlying analyzer.
	// Zero disables limiting.
	RequestsPerSecond float64
}

// DefaultResilientConfig returns the default resilience settings.
func DefaultResilientConfig() *ResilientConfig {
	return &ResilientConfig{
		MaxRetries:        2,
		InitialBackoff:    200 * time.Millisecond,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 5,
	}
}

// Resilient wraps an Analyzer with per-attempt timeouts, bounded retries
// with exponential backoff, and rate limiting. Decorator pattern: the
// underlying analyzer is enhanced, not modified. When every attempt fails,
// the returned error carries ErrAnalyzerUnavailable so the engine takes its
// fallback path.
type Resilient struct {
	inner   Analyzer
	config  *ResilientConfig
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewResilient wraps inner with the given config (nil selects defaults).
func NewResilient(inner Analyzer, config *ResilientConfig, logger *zap.Logger) *Resilient {
	if config == nil {
		config = DefaultResilientConfig()
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Resilient{
		inner:   inner,
		config:  config,
		limiter: limiter,
		logger:  logger.With(zap.String("component", "analyzer"), zap.String("analyzer", inner.Name())),
	}
}

// Name implements Analyzer.
func (r *Resilient) Name() string {
	return r.inner.Name() + "+resilient"
}

// Analyze implements Analyzer.
func (r *Resilient) Analyze(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error) {
	backoff := r.config.InitialBackoff
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, types.NewAnalyzerUnavailableError(ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, types.NewAnalyzerUnavailableError(err)
			}
		}

		result, err := r.analyzeOnce(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err
		r.logger.Warn("analyzer attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return nil, types.NewAnalyzerUnavailableError(lastErr)
}

func (r *Resilient) analyzeOnce(ctx context.Context, req *types.UserFurnitureRequest) (*types.AnalysisResult, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}
	return r.inner.Analyze(ctx, req)
}
