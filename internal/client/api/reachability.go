package api

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// WaitReachable probes the backend until it answers, the retry budget is
// spent, or ctx is done. The hosted backend sleeps when idle and takes a few
// seconds to cold-start, so the first probe after a quiet period routinely
// fails; exponential backoff rides that out.
func WaitReachable(ctx context.Context, c Client, maxRetries uint64, initial time.Duration) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(initial))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
