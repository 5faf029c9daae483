package recount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/cedizen/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryRebuild(t *testing.T) {
	ctx := context.Background()
	voteID := core.ID(7)

	t.Run("succeeds on first try", func(t *testing.T) {
		attempts := 0
		err := retryRebuild(ctx, voteID, 3, 10*time.Millisecond, func(ctx context.Context, id core.ID) error {
			attempts++
			assert.Equal(t, voteID, id)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := retryRebuild(ctx, voteID, 5, 10*time.Millisecond, func(ctx context.Context, id core.ID) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient badger conflict")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error when every try fails", func(t *testing.T) {
		attempts := 0
		wantErr := errors.New("tally write rejected")
		err := retryRebuild(ctx, voteID, 3, 10*time.Millisecond, func(ctx context.Context, id core.ID) error {
			attempts++
			return wantErr
		})
		assert.Equal(t, wantErr, err)
		assert.Equal(t, 3, attempts, "should attempt exactly maxAttempts times")
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		attempts := 0
		err := retryRebuild(cancelCtx, voteID, 10, 10*time.Millisecond, func(ctx context.Context, id core.ID) error {
			attempts++
			if attempts == 2 {
				cancel()
			}
			return errors.New("error")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.LessOrEqual(t, attempts, 2)
	})

	t.Run("delays double between tries", func(t *testing.T) {
		attempts := 0
		var delays []time.Duration
		lastTime := time.Now()

		err := retryRebuild(ctx, voteID, 5, 10*time.Millisecond, func(ctx context.Context, id core.ID) error {
			attempts++
			if attempts > 1 {
				delays = append(delays, time.Since(lastTime))
			}
			lastTime = time.Now()
			if attempts < 4 {
				return errors.New("error")
			}
			return nil
		})
		require.NoError(t, err)
		require.Len(t, delays, 3)

		// Allow some tolerance for timing variance
		assert.Greater(t, delays[1], delays[0], "second delay should be greater than first")
		assert.Greater(t, delays[2], delays[1], "third delay should be greater than second")
	})

	t.Run("invalid max attempts", func(t *testing.T) {
		attempts := 0
		attempt := func(ctx context.Context, id core.ID) error {
			attempts++
			return errors.New("error")
		}

		err := retryRebuild(ctx, voteID, 0, 10*time.Millisecond, attempt)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)

		err = retryRebuild(ctx, voteID, -1, 10*time.Millisecond, attempt)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)

		assert.Equal(t, 0, attempts, "the attempt should never run")
	})
}
