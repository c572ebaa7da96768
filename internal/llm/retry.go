package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with capped exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	schemaRetried := false

	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt+1 >= attempts || !retryable(err, &schemaRetried) {
			return nil, err
		}
		if err := sleep(ctx, r.backoff(attempt, err)); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether err is worth another attempt. Rate limits,
// outages and network errors are. Cancellation, truncation and rejected
// requests are final. A response that missed the schema gets exactly one
// more try per call.
func retryable(err error, schemaRetried *bool) bool {
	var (
		maxTok   *ErrMaxTokensExceeded
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.As(err, &maxTok), errors.As(err, &rejected):
		return false
	case errors.As(err, &invalid):
		if *schemaRetried {
			return false
		}
		*schemaRetried = true
	}
	return true
}

// backoff returns the wait before the next attempt. A server-supplied
// Retry-After wins; otherwise the wait grows by Multiplier up to MaxWait
// with ±20% jitter.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = min(wait, float64(r.config.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
