package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", "Main", mustMoney(t, "5.00"), "")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateMenuItemCommand(
		existing.ID(), staffProfile(t), "Veggie Burger", "Main", mustMoney(t, "6.00"), "", false,
	)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Veggie Burger", existing.Name())
	assert.Equal(t, "6.00", existing.Price().String())
	assert.False(t, existing.Available())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateMenuItemCommand(
		id, staffProfile(t), "Veggie Burger", "Main", mustMoney(t, "6.00"), "", true,
	)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("menu item", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateMenuItemCommandHandler_Handle_ForbiddenForCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuItemCommand(
		kernel.NewUUID(), customerProfile(t), "Veggie Burger", "Main", mustMoney(t, "6.00"), "", true,
	)
	require.NoError(t, err)

	factory := new(MockMenuUoWFactory)

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
