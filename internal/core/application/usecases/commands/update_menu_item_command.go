package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a staff request to replace a dish's
// editable fields, including its availability toggle. Updates never touch
// existing orders, which carry their own snapshots.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	profile   account.Profile
	name      string
	category  string
	price     kernel.Money
	imageURL  string
	available bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command that replaces the dish's name,
// category, price, image URL and availability with the given values.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	profile account.Profile,
	name, category string,
	price kernel.Money,
	imageURL string,
	available bool,
) (UpdateMenuItemCommand, error) {
	command := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setProfile(profile),
		command.setName(name),
		command.setCategory(category),
		command.setPrice(price),
		command.setImageURL(imageURL),
		command.setAvailable(available),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMenuItemCommandIsNotConstructed if validation fails.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the dish to update.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Profile returns the requesting actor's profile.
func (c UpdateMenuItemCommand) Profile() account.Profile {
	return c.profile
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Category returns the new menu category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// ImageURL returns the new image URL, empty to clear it.
func (c UpdateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

// Available returns the new availability flag.
func (c UpdateMenuItemCommand) Available() bool {
	return c.available
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setImageURL(imageURL string) error {
	c.imageURL = imageURL
	return nil
}

func (c *UpdateMenuItemCommand) setAvailable(available bool) error {
	c.available = available
	return nil
}
