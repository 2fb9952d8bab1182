package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/tattoostudio/studio-manager/internal/core/domain"
)

const readAttempts = 3

// readBackOff builds the backoff policy for repository reads. Overridden in tests.
var readBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	return b
}

// permanentErrors are outcomes that another attempt cannot change.
var permanentErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrClientNotFound,
	domain.ErrArtistNotFound,
	domain.ErrSessionNotFound,
	domain.ErrValidation,
	context.Canceled,
	context.DeadlineExceeded,
}

// retryRead runs op up to readAttempts times with exponential backoff.
func retryRead[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		v, err := op()
		if err != nil && isPermanent(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, backoff.WithBackOff(readBackOff()), backoff.WithMaxTries(readAttempts))
}

func isPermanent(err error) bool {
	for _, target := range permanentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
