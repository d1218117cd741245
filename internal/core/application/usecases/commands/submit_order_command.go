package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to turn the actor's cart into a
// placed order. The cart lines are carried as snapshots; the resulting order
// is priced from them, never from the live menu.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, profile, session.Cart().Lines())
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	profile account.Profile
	lines   []cart.Line

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the given cart lines as
// an order owned by the given profile. An empty line set is accepted here and
// rejected with a cart-is-empty error at handling time, keeping the rule in
// the order aggregate.
func NewSubmitOrderCommand(orderID kernel.UUID, profile account.Profile, lines []cart.Line) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProfile(profile),
		command.setLines(lines),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Profile returns the submitting actor's profile.
func (c SubmitOrderCommand) Profile() account.Profile {
	return c.profile
}

// Lines returns the cart line snapshots to be ordered.
func (c SubmitOrderCommand) Lines() []cart.Line {
	return c.lines
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}

func (c *SubmitOrderCommand) setLines(lines []cart.Line) error {
	c.lines = make([]cart.Line, len(lines))
	copy(c.lines, lines)
	return nil
}
