package journal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// RetryConfig controls how writes are retried while another process holds the
// database lock.
type RetryConfig struct {
	MaxTries    uint
	InitialWait time.Duration
	MaxWait     time.Duration
	MaxElapsed  time.Duration
}

// DefaultRetryConfig suits a journal shared by a few local processes.
var DefaultRetryConfig = RetryConfig{
	MaxTries:    4,
	InitialWait: 50 * time.Millisecond,
	MaxWait:     time.Second,
	MaxElapsed:  5 * time.Second,
}

// retryBusy runs fn until it succeeds, fails with a non-busy error, or rc is exhausted.
func retryBusy[T any](ctx context.Context, rc RetryConfig, fn func() (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := fn()
		if err == nil {
			return v, nil
		}
		if !isBusy(err) {
			return v, backoff.Permanent(err)
		}
		slog.Debug("journal: database busy, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
		return v, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = rc.InitialWait
	bo.MaxInterval = rc.MaxWait

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(rc.MaxTries),
		backoff.WithMaxElapsedTime(rc.MaxElapsed),
	)
}

// isBusy reports whether err is SQLITE_BUSY or SQLITE_LOCKED (any extended code).
func isBusy(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
