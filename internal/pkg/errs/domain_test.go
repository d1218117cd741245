package errs_test

import (
	"errors"
	"testing"

	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartIsEmptyError(t *testing.T) {
	err := errs.NewCartIsEmptyError()

	assert.Equal(t, "cart is empty: at least one line is required to submit an order", err.Error())
	assert.Equal(t, errs.ErrCartIsEmpty, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrCartIsEmpty)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("advance order", "customer")

	assert.Equal(t, "advance order", err.Operation)
	assert.Equal(t, "customer", err.Role)
	assert.Equal(t, "operation is forbidden: advance order is not allowed for role customer", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestTerminalStateError(t *testing.T) {
	err := errs.NewTerminalStateError("completed")

	assert.Equal(t, "completed", err.Status)
	assert.Equal(t, "order is in terminal state: completed", err.Error())
	require.ErrorIs(t, err, errs.ErrOrderInTerminalState)
}

func TestInvalidStatusError(t *testing.T) {
	t.Run("plain value", func(t *testing.T) {
		err := errs.NewInvalidStatusError("shipped")

		assert.Equal(t, "shipped", err.Value)
		assert.Equal(t, "status is invalid: shipped", err.Error())
		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})

	t.Run("value with newline is sanitized", func(t *testing.T) {
		err := errs.NewInvalidStatusError("bad\nstatus")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestStoreUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStoreUnavailableError("submit order", cause)

		assert.Equal(t, "submit order", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "record store is unavailable: submit order (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStoreUnavailableError("reload", nil)
		assert.Equal(t, "record store is unavailable: reload", err.Error())
	})
}

func TestDomainSentinelMessages(t *testing.T) {
	assert.Equal(t, "cart is empty", errs.ErrCartIsEmpty.Error())
	assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
	assert.Equal(t, "order is in terminal state", errs.ErrOrderInTerminalState.Error())
	assert.Equal(t, "status is invalid", errs.ErrStatusIsInvalid.Error())
	assert.Equal(t, "record store is unavailable", errs.ErrStoreUnavailable.Error())
}
