package storage

import (
	"context"
	"fmt"
	"time"
)

const retryBaseDelay = 200 * time.Millisecond

// retryWithBackoff calls fn up to maxRetries+1 times with exponential
// backoff. fn receives the current attempt number (0-indexed). If the
// context is cancelled, the context error is returned immediately.
// Used by the sponsor reference cleanup, where a transient Firestore
// error on one sponsor should not be taken as final.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func(attempt int) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}

		// Don't wait after the last attempt
		if attempt == maxRetries {
			break
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		backoff := time.Duration(1<<attempt) * retryBaseDelay
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
