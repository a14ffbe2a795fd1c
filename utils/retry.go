package utils

import (
	"context"
	"time"
)

// WithRetry runs fn up to attempts times, doubling the delay between
// attempts starting from baseDelay. A retry happens only when retryable
// reports the error as transient; terminal errors are returned immediately
// so that a real conflict is never masked by a retry.
func WithRetry(ctx context.Context, attempts int, baseDelay time.Duration, retryable func(error) bool, fn func() error) error {
	var err error
	delay := baseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil || !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
