package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/elan/internal/logger"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
	log   *logger.Logger
}

// WithRetry wraps p. Rate limits and outages are retried up to
// cfg.MaxAttempts; an invalid reply is retried once; rejected, blocked and
// truncated requests fail immediately.
func WithRetry(p Provider, cfg RetryConfig, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &RetryProvider{inner: p, cfg: cfg, log: log}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	invalidSeen := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= attempts || !retryable(err, &invalidSeen) {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.log.Info("retrying llm request",
			"purpose", PurposeFrom(ctx), "attempt", attempt, "wait", wait, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		// Unclassified errors come from the transport.
		return true
	}
	switch kind {
	case KindUnavailable, KindRateLimit:
		return true
	case KindInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	default:
		return false
	}
}

// backoff is InitialWait * Multiplier^(attempt-1), capped at MaxWait, with
// 20% jitter. An advertised Retry-After wins.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimit && e.RetryAfter > 0 {
		return e.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	wait = math.Min(wait, float64(r.cfg.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
