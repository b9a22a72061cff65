package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("flaky")

func TestDoWithResult(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts: 3,
		Backoff:     ConstantBackoff(time.Millisecond),
	}

	t.Run("SucceedsAfterRetries", func(t *testing.T) {
		var calls int
		got, err := DoWithResult(context.Background(), cfg, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errFlaky
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustedAttempts", func(t *testing.T) {
		var calls int
		_, err := DoWithResult(context.Background(), cfg, func() (string, error) {
			calls++
			return "", errFlaky
		})

		assert.ErrorIs(t, err, errFlaky)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableStopsEarly", func(t *testing.T) {
		c := cfg
		c.ShouldRetry = func(err error) bool { return !errors.Is(err, errFlaky) }

		var calls int
		_, err := DoWithResult(context.Background(), c, func() (string, error) {
			calls++
			return "", errFlaky
		})

		assert.ErrorIs(t, err, errFlaky)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := DoWithResult(ctx, cfg, func() (string, error) {
			t.Error("no attempt expected")
			return "", nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExponentialBackoff(t *testing.T) {
	t.Run("GrowsWithAttempts", func(t *testing.T) {
		b := ExponentialBackoff(100 * time.Millisecond)
		first := b(1)
		third := b(3)
		assert.Greater(t, third, first)
	})

	t.Run("TinyDelayDoesNotPanic", func(t *testing.T) {
		// sub-2ns delays truncate the jitter range to zero
		b := ExponentialBackoff(time.Nanosecond)
		assert.Positive(t, b(1))

		b = ExponentialBackoff(0)
		assert.Positive(t, b(1))
	})
}

func TestDo(t *testing.T) {
	var calls int
	err := Do(context.Background(), RetryConfig{MaxAttempts: 2, Backoff: ConstantBackoff(time.Millisecond)},
		func() error {
			calls++
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
