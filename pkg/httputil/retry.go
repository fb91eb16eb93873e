package httputil

import (
	"context"
	"errors"
	"time"

	"github.com/cenk/backoff"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses) with this type
// so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// MaxDelay caps the wait between two attempts.
const MaxDelay = 10 * time.Second

// Retry executes fn up to attempts times. Only errors wrapped with
// [RetryableError] are retried; other errors are returned immediately.
// The wait starts at delay and doubles after each failure, capped at
// [MaxDelay]. Returns the last error if all attempts fail, or ctx.Err() if
// cancelled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	schedule := newSchedule(delay)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			wait := schedule.NextBackOff()
			if wait == backoff.Stop {
				return lastErr
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return lastErr
}

// IsRetryable reports whether err is marked as a transient failure.
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

func newSchedule(delay time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = min(max(delay, time.Millisecond), MaxDelay)
	b.MaxInterval = MaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
