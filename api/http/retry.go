package http

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// RetryableError marks a failure as transient so that Retry will attempt
// the operation again. Anything else aborts the retry loop immediately.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// Retry runs fn up to attempts times, sleeping between tries and doubling
// the delay after each failure. It returns the last error once the
// attempts are spent, or ctx.Err() when the context ends mid wait.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		zap.S().Debugf("attempt %d of %d failed: %v", attempt+1, attempts, err)

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}

	return lastErr
}
