package boulevard

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// executeWithRetry wraps a single transport call with the retry policy.
// Rate-limit replies sleep for the server's hint (floored so a zero or
// missing hint still pauses) and network failures back off exponentially,
// doubling from the initial delay up to the cap. Transport, configuration
// and protocol errors are never retried; they indicate a request that
// would fail identically on resubmission.
func (c *Client) executeWithRetry(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	logger := zerolog.Ctx(ctx)

	delay := c.opts.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		resp, err := c.transport.Execute(ctx, query, variables)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var rateLimited *RateLimitError
		var network *NetworkError

		switch {
		case errors.As(err, &rateLimited):
			wait := delay
			if rateLimited.WaitHint > 0 {
				wait = rateLimited.WaitHint
			}
			if wait < minRateLimitSleep {
				wait = minRateLimitSleep
			}
			logger.Warn().
				Int("attempt", attempt).
				Dur("wait", wait).
				Msg("rate limited, backing off")
			c.sleep(wait)
			delay *= 2
			if delay > maxBackoffDelay {
				delay = maxBackoffDelay
			}
		case errors.As(err, &network):
			logger.Warn().
				Int("attempt", attempt).
				Dur("wait", delay).
				Err(network.Err).
				Msg("network failure, retrying")
			c.sleep(delay)
			delay *= 2
			if delay > maxBackoffDelay {
				delay = maxBackoffDelay
			}
		default:
			return nil, err
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}
