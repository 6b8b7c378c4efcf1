package retry

import (
	"context"
	"errors"
	"time"

	mcpagent "github.com/spetersoncode/github-mcp-agent"
)

// Do invokes fn until it succeeds or the attempt budget in cfg is spent.
// Only transient errors (rate limits, 5xx responses, connection failures)
// are retried; permanent and user-input errors return immediately. A
// server-supplied Retry-After delay on the error overrides the computed
// backoff. Context cancellation is honored during waits.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsTransient(err) || attempt >= cfg.MaxAttempts-1 {
			return zero, err
		}
		if werr := wait(ctx, nextDelay(cfg, attempt, err)); werr != nil {
			return zero, werr
		}
	}
}

// DoStream is like Do for stream-opening functions. Only establishing the
// stream is retried; events already flowing on a returned channel are not.
func DoStream[T any](ctx context.Context, cfg Config, fn func() (<-chan T, error)) (<-chan T, error) {
	for attempt := 0; ; attempt++ {
		ch, err := fn()
		if err == nil {
			return ch, nil
		}
		if !IsTransient(err) || attempt >= cfg.MaxAttempts-1 {
			return nil, err
		}
		if werr := wait(ctx, nextDelay(cfg, attempt, err)); werr != nil {
			return nil, werr
		}
	}
}

// nextDelay picks the pause before the next attempt. Retry-After from the
// provider wins over exponential backoff.
func nextDelay(cfg Config, attempt int, err error) time.Duration {
	var apiErr *mcpagent.Error
	if errors.As(err, &apiErr) && apiErr.RetryDelay > 0 {
		return apiErr.RetryDelay
	}
	return cfg.Delay(attempt)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
