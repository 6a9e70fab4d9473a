package pen

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = time.Second * 2
)

// withRetry runs op up to attempts times, sleeping progressively
// longer between failures (backoff, 2*backoff, ...)
func withRetry(
	ctx context.Context,
	attempts int,
	backoff time.Duration,
	op func(context.Context) error,
) error {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}
