// Package cart provides the session-local cart model: the mutable collection
// of (menu item snapshot, quantity) pairs an actor assembles before
// submitting an order.
//
// Key business rules:
//   - Adding an already-present item merges into its line (quantity +1)
//   - Quantity is always at least 1; a line reaching 0 is removed, not kept
//   - Totals and item counts are derived fresh on every call, never cached
//   - Carts are never persisted and never shared between sessions
package cart
