package retry

import (
	"context"
	"time"
)

const defaultAttempts = 3

var defaultBackoff = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

type Retrier struct {
	attempts    int
	backoff     []time.Duration
	isRetryable func(error) bool
}

func New(isRetryable func(error) bool) *Retrier {
	return &Retrier{
		attempts:    defaultAttempts,
		backoff:     defaultBackoff,
		isRetryable: isRetryable,
	}
}

// Do runs op, retrying retryable errors with a fixed backoff schedule.
// The last error is returned when attempts are exhausted.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.attempts; attempt++ {
		if attempt > 0 {
			idx := attempt - 1
			if idx >= len(r.backoff) {
				idx = len(r.backoff) - 1
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.backoff[idx]):
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if r.isRetryable == nil || !r.isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
