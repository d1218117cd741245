package cart

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// Line is one cart entry: a snapshot of a menu item plus a quantity.
// The snapshot is taken when the item is added, so later menu edits do not
// change what is already in the cart.
type Line struct {
	itemID   kernel.UUID
	name     string
	price    kernel.Money
	quantity int
}

// ItemID returns the identifier of the snapshotted menu item.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the dish name as it was when added.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price as it was when added.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the current quantity of the line. Always at least 1:
// a line whose quantity drops to zero is removed, never retained.
func (l Line) Quantity() int {
	return l.quantity
}

// Cart is the session-local, mutable collection of lines an actor is
// assembling before submission. It is never persisted and never shared
// between sessions, so it requires no synchronization of its own.
//
// The cart accepts any well-formed input without error; non-emptiness is
// validated at submission time, not here.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the given menu item into the cart.
// If a line for the same item id already exists its quantity is incremented
// by 1; otherwise a new line with quantity 1 is appended, preserving
// insertion order. The item's name and price are snapshotted at this moment.
func (c *Cart) AddItem(item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i := range c.lines {
		if c.lines[i].itemID.IsEqual(item.ID()) {
			c.lines[i].quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		itemID:   item.ID(),
		name:     item.Name(),
		price:    item.Price(),
		quantity: 1,
	})
	return nil
}

// ChangeQuantity adjusts the matching line's quantity by delta.
// If the result is zero or less the line is removed entirely.
// A no-op if no line matches itemID.
func (c *Cart) ChangeQuantity(itemID kernel.UUID, delta int) {
	for i := range c.lines {
		if c.lines[i].itemID.IsEqual(itemID) {
			c.lines[i].quantity += delta
			if c.lines[i].quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// RemoveItem unconditionally removes the line for itemID, if present.
func (c *Cart) RemoveItem(itemID kernel.UUID) {
	for i := range c.lines {
		if c.lines[i].itemID.IsEqual(itemID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total returns the sum of price multiplied by quantity over all lines.
// It is computed fresh on every call; nothing is cached, so it can never go
// stale against edits.
func (c *Cart) Total() (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		subtotal, err := line.price.MultiplyBy(line.quantity)
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// ItemCount returns the sum of quantities across all lines.
// Used for badge and summary displays.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Clear empties the cart. Called exactly once, immediately after a
// confirmed successful submission, never before.
func (c *Cart) Clear() {
	c.lines = nil
}
