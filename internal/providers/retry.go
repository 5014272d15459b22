package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

const (
	defaultRetries   = 3
	defaultBaseDelay = 1 * time.Second
	defaultMaxDelay  = 8 * time.Second
)

// Retry calls fn with exponential backoff and jitter, returning the first
// successful result or the last error. The context cancels the wait
// between attempts.
func Retry[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < defaultRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == defaultRetries-1 {
			break
		}

		delay := defaultBaseDelay << attempt
		if delay > defaultMaxDelay {
			delay = defaultMaxDelay
		}
		jittered := time.Duration(float64(delay) * (1 + 0.25*rand.Float64()))

		slog.Warn("API call failed, retrying", "error", err, "delay", jittered)
		select {
		case <-time.After(jittered):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
