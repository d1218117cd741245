package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ordering domain taxonomy. Command handlers and the
// HTTP adapter classify failures with errors.Is against these values.
var (
	ErrCartIsEmpty          = errors.New("cart is empty")
	ErrForbidden            = errors.New("operation is forbidden")
	ErrOrderInTerminalState = errors.New("order is in terminal state")
	ErrStatusIsInvalid      = errors.New("status is invalid")
	ErrStoreUnavailable     = errors.New("record store is unavailable")
)

// CartIsEmptyError indicates an order submission was attempted with zero
// cart lines. Recovered locally; no store write occurs.
type CartIsEmptyError struct{}

// NewCartIsEmptyError creates a CartIsEmptyError.
func NewCartIsEmptyError() *CartIsEmptyError {
	return &CartIsEmptyError{}
}

func (e *CartIsEmptyError) Error() string {
	return fmt.Sprintf("%s: at least one line is required to submit an order", ErrCartIsEmpty)
}

func (e *CartIsEmptyError) Unwrap() error {
	return ErrCartIsEmpty
}

// ForbiddenError indicates a role-gated operation was attempted by an actor
// whose role does not permit it.
type ForbiddenError struct {
	Operation string
	Role      string
}

// NewForbiddenError creates a ForbiddenError for the given operation and
// actor role.
func NewForbiddenError(operation, role string) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Role: role}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed for role %s", ErrForbidden, e.Operation, e.Role)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// TerminalStateError indicates an advance was attempted on an order whose
// status permits no further transitions.
type TerminalStateError struct {
	Status string
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(status string) *TerminalStateError {
	return &TerminalStateError{Status: status}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderInTerminalState, e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrOrderInTerminalState
}

// InvalidStatusError indicates a status value outside the recognized set.
type InvalidStatusError struct {
	Value string
}

// NewInvalidStatusError creates an InvalidStatusError for the given value.
func NewInvalidStatusError(value string) *InvalidStatusError {
	return &InvalidStatusError{Value: value}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStatusIsInvalid, sanitize(e.Value))
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrStatusIsInvalid
}

// StoreUnavailableError indicates a transport or database failure on a record
// store call. Safe to retry; local state is left unchanged.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError for the failed
// store operation.
func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Op)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
