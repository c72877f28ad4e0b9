// Package retry provides a bounded retry policy shared by the gateway client and
// the optimistic address book writes.
package retry

import (
	"context"
	"time"

	"petverse/internal/errors"

	goretry "github.com/sethvargo/go-retry"
)

const minDelay = time.Millisecond

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Delay is the constant wait between attempts.
	Delay time.Duration
	// AttemptTimeout bounds every single attempt. Zero means no per-attempt bound.
	AttemptTimeout time.Duration
	// Retryable decides whether a failed attempt may be retried. Nil retries every error.
	Retryable func(err error) bool
}

// Do runs fn until it succeeds, returns a non-retryable error, or the attempts run out.
// fn receives the attempt number starting at 1. The error of the last attempt is returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := p.Delay
	if delay < minDelay {
		delay = minDelay
	}

	backoff := goretry.WithMaxRetries(uint64(maxAttempts-1), goretry.NewConstant(delay))

	attempt := 0
	var lastErr error
	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		attemptCtx := ctx
		if p.AttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, p.AttemptTimeout)
			defer cancel()
		}

		lastErr = fn(attemptCtx, attempt)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}

		return goretry.RetryableError(lastErr)
	})
	if err == nil {
		return nil
	}
	// The parent context ended between attempts: report what the last attempt saw.
	if lastErr != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return errors.Wrap(lastErr, ctx.Err().Error())
	}

	return err
}
