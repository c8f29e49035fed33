// Package retry provides the backoff policy wrapped around transient
// network operations. The policy is injected into the acquirer so tests
// can run with zero retries.
package retry

import (
	"context"
	"math"
	"time"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tenure-cli/internal/logger"
)

// Ensure Backoff implements the interface.
var _ driven.RetryPolicy = (*Backoff)(nil)

// Backoff retries with capped exponential backoff. Only errors that
// report domain.IsRetryable are re-attempted.
type Backoff struct {
	// MaxRetries is the number of re-attempts after the first try.
	MaxRetries int

	// InitialDelay is the wait before the first re-attempt.
	InitialDelay time.Duration

	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration
}

// NewBackoff creates a policy with the configured retry cap and the
// default delay curve.
func NewBackoff(maxRetries int) *Backoff {
	return &Backoff{
		MaxRetries:   maxRetries,
		InitialDelay: domain.DefaultInitialBackoff,
		MaxDelay:     domain.DefaultMaxBackoff,
	}
}

// Do runs attempt until it succeeds, fails non-retryably, or retries
// are exhausted. The last error is returned.
func (b *Backoff) Do(ctx context.Context, attempt func(ctx context.Context) error) error {
	var lastErr error

	for try := 0; try <= b.MaxRetries; try++ {
		if try > 0 {
			delay := b.delay(try - 1)
			logger.Debug("retry %d/%d after %s: %v", try, b.MaxRetries, delay, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = attempt(ctx)
		if lastErr == nil {
			return nil
		}
		if !domain.IsRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// delay returns the wait before re-attempt number try (zero-based),
// doubling from InitialDelay up to MaxDelay.
func (b *Backoff) delay(try int) time.Duration {
	d := float64(b.InitialDelay) * math.Pow(2, float64(try))
	if d > float64(b.MaxDelay) {
		d = float64(b.MaxDelay)
	}
	return time.Duration(d)
}
