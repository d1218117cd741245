// Package account provides the actor model for the canteen ordering system:
// roles and profiles. Roles are assigned at account creation and are not
// self-service-changeable; every role gate in the application resolves to the
// predicates defined here so that authorization is enforced server-side, not
// in any presentation layer.
package account

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Role represents an actor's authorization level.
//
// Two roles exist:
//   - Customer: may read own orders and create new ones
//   - Staff: may read all orders, drive the order lifecycle, and manage the menu
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer is the default role for any newly registered actor.
	Customer

	// Staff may manage orders and menu items.
	Staff
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Staff:       "staff",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Staff:    "staff",
	}
}

// RoleFromString parses a role from its persisted string form.
// Any unrecognized value resolves to Customer: an actor with no usable role
// record is treated as a customer, never escalated.
func RoleFromString(s string) Role {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role
		}
	}
	return Customer
}

// Validate checks if the Role value is valid.
// Valid roles are Customer and Staff; UnknownRole and any other values are
// invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role.
// This method implements the fmt.Stringer interface and is safe to call on
// any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanManageOrders reports whether the role may advance or overwrite order
// statuses. Only staff may.
func (r Role) CanManageOrders() bool {
	return r == Staff
}

// CanManageMenu reports whether the role may create, update, or delete menu
// items. Only staff may.
func (r Role) CanManageMenu() bool {
	return r == Staff
}

// SeesAllOrders reports whether the role's read scope covers every order
// rather than only the actor's own.
func (r Role) SeesAllOrders() bool {
	return r == Staff
}
