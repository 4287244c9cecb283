package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryConfig{MaxTries: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, MaxElapsed: time.Second}

func TestRetryBusy_NonBusyErrorIsPermanent(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	_, err := retryBusy(context.Background(), fastRetry, func() (int, error) {
		calls++
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryBusy_Success(t *testing.T) {
	v, err := retryBusy(context.Background(), fastRetry, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestRetryBusy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := retryBusy(ctx, fastRetry, func() (int, error) { return 1, nil })
	// A cancelled context may stop before or after the first call; it must never hang.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestIsBusy(t *testing.T) {
	assert.False(t, isBusy(errors.New("database is locked")), "only driver errors count")
	assert.False(t, isBusy(nil))
}
