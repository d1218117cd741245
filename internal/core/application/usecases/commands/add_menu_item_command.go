package commands

import (
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a staff request to add a new dish to the menu.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("5.00")
//	cmd, err := NewAddMenuItemCommand(kernel.NewUUID(), staffProfile, "Burger", "Main", price, "")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//
//	handler := NewAddMenuItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add menu item: %w", err)
//	}
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	profile  account.Profile
	name     string
	category string
	price    kernel.Money
	imageURL string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a dish under the given
// identifier. Name and category must be non-empty, the price constructed.
// The image URL is optional.
func NewAddMenuItemCommand(
	itemID kernel.UUID,
	profile account.Profile,
	name, category string,
	price kernel.Money,
	imageURL string,
) (AddMenuItemCommand, error) {
	command := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setProfile(profile),
		command.setName(name),
		command.setCategory(category),
		command.setPrice(price),
		command.setImageURL(imageURL),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddMenuItemCommandIsNotConstructed if validation fails.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier the new dish will be created under.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Profile returns the requesting actor's profile.
func (c AddMenuItemCommand) Profile() account.Profile {
	return c.profile
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Category returns the menu category the dish belongs to.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

// ImageURL returns the optional image URL, empty when none was given.
func (c AddMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setImageURL(imageURL string) error {
	c.imageURL = imageURL
	return nil
}
