// Package ports defines repository and infrastructure interfaces for the
// canteen ordering domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu item aggregates.
// Provides methods for storing, retrieving, updating and deleting the dishes
// staff curate and customers order from.
type MenuRepository interface {
	// Add persists a new menu item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Delete removes the menu item with the given identifier.
	// Orders referencing the item are unaffected since they carry snapshots.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
