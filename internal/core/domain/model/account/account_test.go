package account_test

import (
	"testing"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, account.Customer, account.RoleFromString("customer"))
	assert.Equal(t, account.Staff, account.RoleFromString("staff"))

	t.Run("unrecognized values resolve to customer", func(t *testing.T) {
		assert.Equal(t, account.Customer, account.RoleFromString(""))
		assert.Equal(t, account.Customer, account.RoleFromString("admin"))
		assert.Equal(t, account.Customer, account.RoleFromString("root"))
	})
}

func TestRoleValidate(t *testing.T) {
	require.NoError(t, account.Customer.Validate())
	require.NoError(t, account.Staff.Validate())
	require.Error(t, account.UnknownRole.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "customer", account.Customer.String())
	assert.Equal(t, "staff", account.Staff.String())
	assert.Equal(t, "unknown", account.UnknownRole.String())
	assert.Equal(t, "unknown", account.Role(42).String())
}

func TestRoleGates(t *testing.T) {
	t.Run("staff may manage orders and menu and sees all orders", func(t *testing.T) {
		assert.True(t, account.Staff.CanManageOrders())
		assert.True(t, account.Staff.CanManageMenu())
		assert.True(t, account.Staff.SeesAllOrders())
	})

	t.Run("customer may not manage anything and sees only own orders", func(t *testing.T) {
		assert.False(t, account.Customer.CanManageOrders())
		assert.False(t, account.Customer.CanManageMenu())
		assert.False(t, account.Customer.SeesAllOrders())
	})
}

func TestNewProfile(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid profile", func(t *testing.T) {
		p, err := account.NewProfile(validID, "user@example.com", account.Customer)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "user@example.com", p.Email())
		assert.Equal(t, account.Customer, p.Role())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := account.NewProfile(invalidID, "user@example.com", account.Customer)
		require.Error(t, err)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := account.NewProfile(validID, "", account.Customer)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := account.NewProfile(validID, "user@example.com", account.UnknownRole)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p account.Profile
		require.Error(t, p.Validate())
	})
}
