package order

import (
	"canteen/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with a strictly linear, non-branching
// progression:
//
//	Placed ──> Preparing ──> Ready ──> Completed
//
// Completed is terminal. Next enforces the monotonic progression used by the
// advance operation; staff may additionally overwrite the status with any
// valid value through Order.ForceSetStatus, which deliberately performs no
// ordering check (see that method).
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Placed is the creation state: a submitted order awaiting the kitchen.
	// There is no pending state before it.
	Placed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order has been handed over.
	// This is a terminal state with no further transitions.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Placed:        "placed",
		Preparing:     "preparing",
		Ready:         "ready",
		Completed:     "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "placed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// StatusFromString parses a status from its persisted or wire form.
// Returns an InvalidStatusError for anything outside the four recognized
// values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewInvalidStatusError(s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Preparing, Ready, Completed.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewInvalidStatusError(s.String())
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "placed", "preparing", "ready", or "completed" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is defined from the status.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Next returns the successor status in the fixed sequence.
//
// Valid transitions:
//   - Placed -> Preparing
//   - Preparing -> Ready
//   - Ready -> Completed
//
// Returns:
//   - (successor, nil) on valid transition
//   - (0, TerminalStateError) if the status is Completed
//   - (0, InvalidStatusError) if the status itself is invalid
//
// This method is used by Order.Advance to enforce the monotonic progression:
// the status index never decreases through this path.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if s.IsTerminal() {
		return UnknownStatus, errs.NewTerminalStateError(s.String())
	}

	return s + 1, nil
}
