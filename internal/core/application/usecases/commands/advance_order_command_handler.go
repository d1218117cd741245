package commands

import (
	"context"

	"canteen/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles the business logic for advancing an
// order's status. The role gate runs first, so a customer is rejected before
// any storage work happens, and the aggregate decides whether the step is
// legal from its current status.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceOrderCommand(orderID, staffProfile)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("advance failed: %w", err)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.OrderAccessPolicy
}

// NewAdvanceOrderCommandHandler creates a handler for order advance operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle processes the order advance command.
// Rejects non-staff actors with a forbidden error, loads the order, moves it
// one step forward, and persists the change within a single transaction.
// A completed order yields a terminal state error and no write.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.AuthorizeStatusChange(cmd.Profile(), "advance order"); err != nil {
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

	if err = aggregate.Advance(); err != nil {
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
