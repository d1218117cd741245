// Package menu provides the MenuItem aggregate for the canteen ordering
// system.
//
// Key business rules:
//   - Items require a valid identifier, a non-empty name and category, and a
//     non-negative price
//   - Only staff mutate menu items (enforced by the application layer's role
//     gates)
//   - Deleting an item is permanent but never alters past orders, which hold
//     snapshots rather than references
package menu
