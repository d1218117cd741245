// Package order provides domain entities and business logic for order
// management in the canteen ordering system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding immutable line item snapshots, the
//     submission-time total, and the mutable fulfillment status
//   - Status: A state machine enforcing the fixed progression
//     placed -> preparing -> ready -> completed
//   - LineItem: An immutable snapshot of one cart line at submission time
//
// Key business rules:
//   - An order is created exactly once, atomically, from a non-empty cart
//   - lineItems, total, ownerID, and createdAt never change after creation
//   - Advance is strictly monotonic and fails once the order is completed
//   - ForceSetStatus is the staff correction path and performs no ordering
//     check among the four valid values
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
