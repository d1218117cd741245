package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents a staff correction that assigns an order
// an arbitrary valid status, including moving it backwards or out of the
// completed state.
//
// Example:
//
//	cmd, err := NewSetOrderStatusCommand(orderID, staffProfile, order.Preparing)
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewSetOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	profile account.Profile
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to set the given order's status
// to the given value on behalf of the given profile. The status must be one
// of the four valid lifecycle values.
func NewSetOrderStatusCommand(orderID kernel.UUID, profile account.Profile, status order.Status) (SetOrderStatusCommand, error) {
	command := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProfile(profile),
		command.setStatus(status),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetOrderStatusCommandIsNotConstructed if validation fails.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Profile returns the requesting actor's profile.
func (c SetOrderStatusCommand) Profile() account.Profile {
	return c.profile
}

// Status returns the target status.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}

func (c *SetOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
