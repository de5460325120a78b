package resolver

import (
	"context"
	"net/http"
	"time"
)

// RetryPolicy controls the resolver's retry loop. The sleep function
// and status predicate are injectable so tests can run without real
// delays.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	RetryStatus func(status int) bool
	Sleep       func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the production retry policy: 3 attempts,
// fixed 1 second delay, retry on 408/429/5xx.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       time.Second,
		RetryStatus: RetryableStatus,
		Sleep:       sleepContext,
	}
}

// RetryableStatus reports whether an upstream status code is worth
// retrying. Other 4xx codes are caller errors and never retried.
func RetryableStatus(status int) bool {
	return status == http.StatusRequestTimeout ||
		status == http.StatusTooManyRequests ||
		status >= 500
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
