package order

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a submitted order in the system. It is the aggregate root
// that manages the fulfillment lifecycle from placement to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner identifier
//   - Must have at least one line item
//   - lineItems, total, ownerID, and createdAt are immutable after construction;
//     only status changes
//   - total equals the sum of price multiplied by quantity over the line items at
//     submission time and is never recomputed from current menu prices
//   - Status transitions via Advance follow the fixed monotonic sequence
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID identifies the customer who submitted the order
	ownerID kernel.UUID

	// lineItems are submission-time snapshots, in cart insertion order
	lineItems []LineItem

	// total is the snapshot sum, fixed at submission time
	total kernel.Money

	// status represents the current state in the fulfillment lifecycle
	status Status

	// createdAt is the assignment-time timestamp, immutable
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status from submission-time line
// item snapshots. This is the only way a fresh order comes into existence.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - ownerID: The submitting customer's identifier (must be valid UUID)
//   - lineItems: Snapshots of the cart lines, in insertion order (must be non-empty)
//   - createdAt: Assignment-time timestamp (must be non-zero)
//
// Returns:
//   - *Order: The created order if all validations pass; its total is computed
//     from the snapshots
//   - error: CartIsEmptyError for an empty line set, validation error otherwise
func NewOrder(id, ownerID kernel.UUID, lineItems []LineItem, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(o.lineItems)
	if err != nil {
		return nil, err
	}
	o.total = total

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// total and status. The stored total is used as-is: recomputing it from the
// snapshots would be redundant, and the snapshot sum is the authoritative
// value written at submission time.
func RestoreOrder(
	id, ownerID kernel.UUID,
	lineItems []LineItem,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLineItems(lineItems),
		o.setCreatedAt(createdAt),
		o.setTotal(total),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the customer who submitted the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// LineItems returns a copy of the submission-time snapshots in cart
// insertion order.
func (o *Order) LineItems() []LineItem {
	lines := make([]LineItem, len(o.lineItems))
	copy(lines, o.lineItems)
	return lines
}

// Total returns the snapshot sum fixed at submission time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the assignment-time timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order to the next status in the fixed sequence.
//
// This method enforces the following business rules:
//   - The progression is strictly monotonic: Placed -> Preparing -> Ready -> Completed
//   - Completed is terminal; advancing a completed order fails with TerminalStateError
//
// Role enforcement (staff only) happens in the application layer before this
// method is reached.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ForceSetStatus overwrites the status with any of the four recognized
// values, without a monotonicity check. This is the staff-privileged
// correction path: it exists so mistaken transitions can be undone, at the
// cost of allowing staff to move an order backwards. Advance remains the
// only automated path and stays strictly monotonic.
//
// Returns InvalidStatusError if the value is not one of the four recognized
// statuses.
func (o *Order) ForceSetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewCartIsEmptyError()
	}

	lines := make([]LineItem, len(lineItems))
	for i, line := range lineItems {
		if err := line.Validate(); err != nil {
			return err
		}
		lines[i] = line
	}

	o.lineItems = lines
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// totalOf sums price multiplied by quantity over the given snapshots.
func totalOf(lineItems []LineItem) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range lineItems {
		subtotal, err := line.Subtotal()
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
