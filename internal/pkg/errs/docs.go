// Package errs provides standardized error types for the canteen ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines two groups of errors:
//
// Generic validation errors used by value objects and commands:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Domain errors forming the order lifecycle taxonomy:
//   - CartIsEmptyError: submission attempted with zero cart lines
//   - ForbiddenError: role-gated operation attempted by unauthorized role
//   - TerminalStateError: advance attempted on a completed order
//   - InvalidStatusError: status outside the recognized set
//   - StoreUnavailableError: transient record store failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error
// classification and handling throughout the application.
package errs
