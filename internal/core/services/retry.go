package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/middleware"
	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the automatic retries of transient storage failures.
type RetryPolicy struct {
	MaxAttempts  int
	BaseInterval time.Duration
}

// DefaultRetryPolicy allows four attempts starting 50ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 4, BaseInterval: 50 * time.Millisecond}
}

// retryStorage runs fn, retrying transient storage errors with exponential
// backoff. Any other error is returned as is on the first occurrence. When
// the attempts run out, or ctx ends between attempts, the result wraps
// apperrors.ErrStorageUnavailable.
func retryStorage(ctx context.Context, policy RetryPolicy, op string, fn func() error) error {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	attempt := 0

	operation := func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !apperrors.IsTransient(err) {
			return backoff.Permanent(err)
		}
		logger.Warn("Transient storage failure",
			slog.String("operation", op),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.BaseInterval
	b.MaxElapsedTime = 0
	bo := backoff.WithContext(backoff.WithMaxRetries(b, uint64(policy.MaxAttempts-1)), ctx)

	err := backoff.Retry(operation, bo)
	switch {
	case err == nil:
		return nil
	case apperrors.IsTransient(err):
		return fmt.Errorf("%w: %s failed after %d attempts: %v", apperrors.ErrStorageUnavailable, op, attempt, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// backoff returns the bare context error when ctx ends between attempts
		return fmt.Errorf("%w: %s interrupted after %d attempts: %w", apperrors.ErrStorageUnavailable, op, attempt, err)
	}
	return err
}
