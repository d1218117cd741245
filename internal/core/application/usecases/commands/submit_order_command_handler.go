package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Converts cart line snapshots into order line items, prices the order from
// those snapshots, and persists it in "placed" status.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand(kernel.NewUUID(), profile, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// The caller clears the cart only after Handle returns nil.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order submission operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the order submission command.
// Builds the order aggregate from the cart snapshots, which rejects an empty
// line set with a cart-is-empty error, then persists it transactionally.
// The cart itself is untouched; callers clear it only on success.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lineItems := make([]order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewLineItem(line.Name(), line.Price(), line.Quantity())
		if err != nil {
			return err
		}
		lineItems = append(lineItems, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Profile().ID(), lineItems, h.now())
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
