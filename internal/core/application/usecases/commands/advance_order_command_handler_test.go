package commands_test

import (
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLineItem("Burger", mustMoney(t, "5.00"), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{line}, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func completedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := placedOrder(t)
	require.NoError(t, o.ForceSetStatus(order.Completed))
	return o
}

func TestAdvanceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := placedOrder(t)
	cmd, err := commands.NewAdvanceOrderCommand(existing.ID(), staffProfile(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Preparing, existing.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_ForbiddenForCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), customerProfile(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestAdvanceOrderCommandHandler_Handle_TerminalState(t *testing.T) {
	ctx := t.Context()
	existing := completedOrder(t)
	cmd, err := commands.NewAdvanceOrderCommand(existing.ID(), staffProfile(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOrderInTerminalState)
	assert.Equal(t, order.Completed, existing.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderCommand(id, staffProfile(t))
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order", id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
