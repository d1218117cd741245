// Package services provides domain services that implement business rules
// spanning more than one aggregate in the canteen ordering system.
//
// The package includes:
//   - OrderAccessPolicy: role-based visibility and mutation rules for orders
//     and menu items
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
