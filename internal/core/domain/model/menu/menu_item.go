package menu

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory methods.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem represents a dish offered by the canteen. It is an aggregate root
// mutated only by staff through the menu management commands.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier
//   - Name and category must be non-empty
//   - Price must be a constructed, non-negative Money
//   - Can only be created through NewMenuItem or RestoreMenuItem
//
// Orders never hold a live reference to a MenuItem: the cart snapshots the
// fields it needs at add time, so later edits or deletion of the item do not
// retroactively alter past orders.
type MenuItem struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// name is the display name of the dish
	name string

	// category groups items on the menu ("Main", "Drinks", ...)
	category string

	// price is the current unit price
	price kernel.Money

	// imageURL is an optional reference to a picture of the dish
	imageURL string

	// available controls whether customers can currently order the item
	available bool

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewMenuItem creates a new MenuItem with validation. New items start out
// available.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - category: Menu category (must be non-empty)
//   - price: Unit price (must be constructed Money)
//   - imageURL: Optional image reference; empty means none
//
// Returns:
//   - *MenuItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewMenuItem(id kernel.UUID, name, category string, price kernel.Money, imageURL string) (*MenuItem, error) {
	item := &MenuItem{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.imageURL = imageURL
	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence, including its
// availability flag. The same validations as NewMenuItem apply.
func RestoreMenuItem(
	id kernel.UUID, name, category string, price kernel.Money, imageURL string, available bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, category, price, imageURL)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name of the dish.
func (m *MenuItem) Name() string {
	return m.name
}

// Category returns the menu category.
func (m *MenuItem) Category() string {
	return m.category
}

// Price returns the current unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// ImageURL returns the optional image reference; empty means none.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// Available reports whether customers can currently order the item.
func (m *MenuItem) Available() bool {
	return m.available
}

// Update replaces the item's editable fields. Availability is controlled
// separately via SetAvailable. Past orders are unaffected: they hold
// snapshots, not references.
func (m *MenuItem) Update(name, category string, price kernel.Money, imageURL string) error {
	if err := errors.Join(
		m.setName(name),
		m.setCategory(category),
		m.setPrice(price),
	); err != nil {
		return err
	}

	m.imageURL = imageURL
	return nil
}

// SetAvailable toggles whether the item can be ordered.
func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	m.category = category
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
