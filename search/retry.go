package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serp"
)

// SearchFunc is the signature for a search function.
type SearchFunc func(ctx context.Context, q *serp.Query) (*serp.ResultPage, error)

// DefaultRetryDelays returns the backoff delays for search retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// SearchWithRetry runs a search with backoff retry logic, waiting delays[i]
// before attempt i+2. Errors that would fail the same way again (blocked,
// invalid query, malformed page) are returned immediately together with
// any partial page. The logger, if provided, records each retry.
func SearchWithRetry(ctx context.Context, q *serp.Query, search SearchFunc, logger *slog.Logger, delays []time.Duration) (*serp.ResultPage, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := search(ctx, q)
		if err == nil || !retryable(err) {
			return page, err
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if logger != nil {
			logger.Warn("retrying search",
				"terms", q.Terms,
				"start", q.Start,
				"attempt", attempt+2,
				"err", err,
			)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

func retryable(err error) bool {
	switch serp.ErrorCode(err) {
	case serp.EBLOCKED, serp.EINVALID, serp.EMALFORMED, serp.ENOTFOUND:
		return false
	}
	return true
}
