package commands

import (
	"context"

	"canteen/internal/core/domain/services"
)

// SetOrderStatusCommandHandler handles the staff correction path for order
// status. Unlike advancing, the target status is unconstrained among the
// valid values, so a mistakenly completed order can be moved back.
type SetOrderStatusCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.OrderAccessPolicy
}

// NewSetOrderStatusCommandHandler creates a handler for direct status
// assignment. Requires an OrderUoWFactory for transactional persistence.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle processes the status assignment command.
// Rejects non-staff actors with a forbidden error, then loads the order,
// applies the target status, and persists within a single transaction.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeStatusChange(cmd.Profile(), "set order status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ForceSetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
