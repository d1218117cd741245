package order

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable snapshot of one cart line taken at submission
// time: the dish name, the unit price as it was then, and the quantity.
// Because it is copied by value, later menu edits or deletions never change
// what an order records.
type LineItem struct { //nolint:recvcheck //using for validation
	name     string
	price    kernel.Money
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot.
// The name must be non-empty, the price constructed, and the quantity
// positive.
func NewLineItem(name string, price kernel.Money, quantity int) (LineItem, error) {
	line := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setName(name),
		line.setPrice(price),
		line.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return line, nil
}

// Validate ensures the line item was created through the constructor.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the dish name as it was at submission time.
func (l LineItem) Name() string {
	return l.name
}

// Price returns the unit price as it was at submission time.
func (l LineItem) Price() kernel.Money {
	return l.price
}

// Quantity returns the ordered quantity.
func (l LineItem) Quantity() int {
	return l.quantity
}

// Subtotal returns price multiplied by quantity.
func (l LineItem) Subtotal() (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return l.price.MultiplyBy(l.quantity)
}

func (l *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}
