package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBlocking(t *testing.T) {
	t.Run("returns the operation result", func(t *testing.T) {
		calls := 0
		result, err := RunBlocking(context.Background(), func(ctx context.Context) (string, error) {
			calls++
			return "hi there", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "hi there", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("propagates the operation error", func(t *testing.T) {
		cause := errors.New("failed")
		result, err := RunBlocking(context.Background(), func(ctx context.Context) (int, error) {
			return 42, cause
		})

		assert.ErrorIs(t, err, cause)
		assert.Zero(t, result)
	})

	t.Run("scope context follows the parent", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunBlocking(parent, func(ctx context.Context) (struct{}, error) {
			<-ctx.Done()
			return struct{}{}, ctx.Err()
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("scope is torn down after return", func(t *testing.T) {
		var scope context.Context
		_, err := RunBlocking(context.Background(), func(ctx context.Context) (bool, error) {
			scope = ctx
			return true, nil
		})

		require.NoError(t, err)
		require.NotNil(t, scope)
		assert.Error(t, scope.Err())
	})
}
