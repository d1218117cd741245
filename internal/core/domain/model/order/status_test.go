package order_test

import (
	"testing"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "placed", order.Placed.String())
	assert.Equal(t, "preparing", order.Preparing.String())
	assert.Equal(t, "ready", order.Ready.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "unknown", order.UnknownStatus.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("recognizes the four valid values", func(t *testing.T) {
		for _, s := range []string{"placed", "preparing", "ready", "completed"} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "shipped", "PLACED", "cancelled"} {
			_, err := order.StatusFromString(s)
			require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
		}
	})
}

func TestStatusValidate(t *testing.T) {
	require.NoError(t, order.Placed.Validate())
	require.NoError(t, order.Completed.Validate())
	require.ErrorIs(t, order.UnknownStatus.Validate(), errs.ErrStatusIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrStatusIsInvalid)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
}

func TestStatusNext(t *testing.T) {
	t.Run("follows the fixed sequence", func(t *testing.T) {
		next, err := order.Placed.Next()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)

		next, err = order.Preparing.Next()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		next, err = order.Ready.Next()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := order.Completed.Next()
		require.ErrorIs(t, err, errs.ErrOrderInTerminalState)
	})

	t.Run("invalid status cannot advance", func(t *testing.T) {
		_, err := order.UnknownStatus.Next()
		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})
}
