package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/brief"
)

// RetryLogFunc is called before each retry with the upcoming attempt number
// and the error that triggered it.
type RetryLogFunc func(attempt int, err error)

// DefaultRetryDelays returns the backoff delays for generation retries: 1s, 2s.
// Three attempts in total.
func DefaultRetryDelays() []time.Duration {
	return BackoffDelays(3, time.Second)
}

// BackoffDelays returns the delays between attempts for the given number of
// attempts, starting at base and doubling each time.
func BackoffDelays(attempts int, base time.Duration) []time.Duration {
	if attempts <= 1 {
		return []time.Duration{}
	}
	delays := make([]time.Duration, attempts-1)
	d := base
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// GenerateWithRetryDelays calls the generator up to len(delays)+1 times,
// waiting delays[i] after the i-th failure. Exhausted attempts return the
// last error annotated with the attempt count. Cancellation stops retries.
func GenerateWithRetryDelays(ctx context.Context, gen brief.Generator, req brief.GenerateRequest, logger RetryLogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := gen.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Invalid requests fail the same way every time.
		if brief.ErrorCode(err) == brief.EINVALID {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger(attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}
