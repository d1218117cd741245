package kernel

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, MoneyFromString, or
// ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money is an immutable value object representing a non-negative currency
// amount. Amounts are normalized to two decimal places on construction, so
// arithmetic over menu prices and order totals is exact - no binary floating
// point is involved at any step.
//
// The zero value of Money is invalid and will fail validation; use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("5.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	subtotal, _ := price.MultiplyBy(2)
//	fmt.Println(subtotal) // Output: 10.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// The amount must be non-negative; it is rounded to two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "11.50". Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a properly constructed Money of 0.00.
// It is the identity element for Add and the starting point for totals.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two amounts.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MultiplyBy returns the amount multiplied by a positive integer quantity.
// Used to derive line subtotals from a unit price.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Decimal returns the underlying decimal amount.
// Used by persistence adapters; domain code should prefer the Money methods.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two decimal places, e.g. "11.50".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// setAmount validates and sets the amount.
// Note: pointer receiver on a private setter, as with other value objects,
// to keep validation self-encapsulated during construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	m.amount = amount.Round(2)
	return nil
}
