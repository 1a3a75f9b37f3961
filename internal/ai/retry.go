package ai

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// retryProvider retries rate-limited calls with a linearly increasing delay
// (base*1, base*2, ...). Any other error passes through untouched. When the
// limit persists past maxAttempts the error escalates to ErrService.
type retryProvider struct {
	next        Provider
	maxAttempts int
	baseDelay   time.Duration
}

// Retry wraps next with bounded retry-on-rate-limit behaviour.
func Retry(next Provider, maxAttempts int, baseDelay time.Duration) Provider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryProvider{next: next, maxAttempts: maxAttempts, baseDelay: baseDelay}
}

func (r *retryProvider) Complete(ctx context.Context, promptText string, temperature float32) (string, error) {
	for attempt := 1; ; attempt++ {
		text, err := r.next.Complete(ctx, promptText, temperature)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return "", err
		}
		if attempt >= r.maxAttempts {
			return "", fmt.Errorf("%w: rate limit persisted after %d attempts", ErrService, r.maxAttempts)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.baseDelay * time.Duration(attempt)):
		}
	}
}
