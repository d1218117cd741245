package commands

import (
	"context"

	"canteen/internal/core/domain/services"
)

// RemoveMenuItemCommandHandler handles the business logic for deleting
// dishes from the menu.
type RemoveMenuItemCommandHandler struct {
	uowFactory   MenuUoWFactory
	accessPolicy services.OrderAccessPolicy
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item deletion.
// Requires a MenuUoWFactory for transactional persistence.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle processes the menu item deletion command.
// Rejects non-staff actors with a forbidden error, then deletes the dish
// within a single transaction. Deleting an absent dish surfaces the
// repository's not-found error.
func (h RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeMenuChange(cmd.Profile(), "remove menu item"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
