package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order one step forward
// along its lifecycle: placed, preparing, ready, completed.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, staffProfile)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrOrderInTerminalState) {
//	    // The order is already completed.
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	profile account.Profile

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the given order's
// status on behalf of the given profile.
func NewAdvanceOrderCommand(orderID kernel.UUID, profile account.Profile) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProfile(profile),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Profile returns the requesting actor's profile.
func (c AdvanceOrderCommand) Profile() account.Profile {
	return c.profile
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}
