package submit

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/cragcoach/internal/profile"
)

// retrySubmitter is a decorator that retries transient errors with
// exponential backoff and jitter.
type retrySubmitter struct {
	inner  Submitter
	config RetryConfig
}

// WithRetry wraps a Submitter with retry logic. A MaxAttempts below 1 means
// a single attempt.
func WithRetry(s Submitter, cfg RetryConfig) Submitter {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retrySubmitter{inner: s, config: cfg}
}

func (r *retrySubmitter) Submit(ctx context.Context, payload profile.AnswerPayload) error {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		err := r.inner.Submit(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}

		// Last attempt, no sleep.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return lastErr
}

func (r *retrySubmitter) Target() string { return r.inner.Target() }

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A payload the schema rejects will be rejected again.
	if errors.Is(err, ErrInvalidPayload) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}

	// Other errors (network, store busy) are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retrySubmitter) backoff(attempt int, err error) time.Duration {
	var se *StatusError
	if errors.As(err, &se) && se.RetryAfter > 0 {
		return se.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxWait > 0 && wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
