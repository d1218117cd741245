package commands

import (
	"context"

	"canteen/internal/core/domain/services"
)

// UpdateMenuItemCommandHandler handles the business logic for editing dishes.
// Existing orders are unaffected because they price from snapshots taken at
// cart time.
type UpdateMenuItemCommandHandler struct {
	uowFactory   MenuUoWFactory
	accessPolicy services.OrderAccessPolicy
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
// Requires a MenuUoWFactory for transactional persistence.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle processes the menu item update command.
// Rejects non-staff actors with a forbidden error, loads the dish, replaces
// its editable fields and availability, and persists transactionally.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeMenuChange(cmd.Profile(), "update menu item"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Update(cmd.Name(), cmd.Category(), cmd.Price(), cmd.ImageURL()); err != nil {
		return err
	}
	item.SetAvailable(cmd.Available())

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
