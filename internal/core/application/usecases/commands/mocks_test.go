package commands_test

import (
	"context"
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func staffProfile(t *testing.T) account.Profile {
	t.Helper()
	p, err := account.NewProfile(kernel.NewUUID(), "staff@canteen.local", account.Staff)
	require.NoError(t, err)
	return p
}

func customerProfile(t *testing.T) account.Profile {
	t.Helper()
	p, err := account.NewProfile(kernel.NewUUID(), "customer@canteen.local", account.Customer)
	require.NoError(t, err)
	return p
}

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return m
}

func burgerAndSodaLines(t *testing.T) []cart.Line {
	t.Helper()
	burger, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", "Main", mustMoney(t, "5.00"), "")
	require.NoError(t, err)
	soda, err := menu.NewMenuItem(kernel.NewUUID(), "Soda", "Drinks", mustMoney(t, "1.50"), "")
	require.NoError(t, err)

	c := cart.NewCart()
	require.NoError(t, c.AddItem(burger))
	require.NoError(t, c.AddItem(burger))
	require.NoError(t, c.AddItem(soda))
	return c.Lines()
}
