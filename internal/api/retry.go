package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/parsererror"
)

// ErrMaxRetries indicates that all retry attempts have been exhausted.
var ErrMaxRetries = errors.New("max retries exceeded")

// RetryPolicy controls how failed requests are retried.
type RetryPolicy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryPolicy retries twice with exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   2,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = 100 * time.Millisecond
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 30 * time.Second
	}
	if p.Multiplier <= 0 {
		p.Multiplier = 2.0
	}
	return p
}

// retryable reports whether err is worth another attempt. Request errors say
// so themselves; anything else (decode failures) is final.
func retryable(err error) bool {
	var reqErr *parsererror.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Temporary()
	}
	return false
}

// withRetry runs operation until it succeeds, fails permanently, the context
// ends or the policy is exhausted.
func withRetry(ctx context.Context, policy RetryPolicy, logger logging.Logger, operation func() error) error {
	policy = policy.normalized()
	attempts := policy.MaxRetries + 1
	delay := policy.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt == attempts {
			if attempts == 1 {
				return err
			}
			return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, attempts, err)
		}

		logger.WithError(err).Warn("Request failed, retrying",
			logging.F(logging.FieldAttempt, attempt),
			logging.F(logging.FieldDuration, delay.String()))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * policy.Multiplier)
		if delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}
	return ErrMaxRetries
}
