package commands

import (
	"context"

	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/services"
)

// AddMenuItemCommandHandler handles the business logic for adding dishes to
// the menu. New dishes start available so they appear to customers as soon
// as the write commits.
type AddMenuItemCommandHandler struct {
	uowFactory   MenuUoWFactory
	accessPolicy services.OrderAccessPolicy
}

// NewAddMenuItemCommandHandler creates a handler for menu item creation.
// Requires a MenuUoWFactory for transactional persistence.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle processes the menu item creation command.
// Rejects non-staff actors with a forbidden error, builds the aggregate,
// and persists it within a single transaction.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeMenuChange(cmd.Profile(), "add menu item"); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.Name(), cmd.Category(), cmd.Price(), cmd.ImageURL())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
