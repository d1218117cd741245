package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a staff request to delete a dish from the
// menu. Past orders keep their snapshots of the dish.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	profile account.Profile

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to delete the given dish on
// behalf of the given profile.
func NewRemoveMenuItemCommand(itemID kernel.UUID, profile account.Profile) (RemoveMenuItemCommand, error) {
	command := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setProfile(profile),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveMenuItemCommandIsNotConstructed if validation fails.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the dish to delete.
func (c RemoveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Profile returns the requesting actor's profile.
func (c RemoveMenuItemCommand) Profile() account.Profile {
	return c.profile
}

func (c *RemoveMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RemoveMenuItemCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}
