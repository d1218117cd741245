// Package queries contains read operations over the canteen's stored state.
// Implements the Query side of the CQRS architecture: read models are built
// with direct SQL for performance and never go through the aggregates.
package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves menu items with optional filtering.
// Customers browse with availableOnly set; staff see everything.
//
// Example:
//
//	query := NewGetMenuQuery("Main", "burger", true)
//	handler := NewGetMenuQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
//	fmt.Printf("Found %d dishes\n", len(items))
type GetMenuQuery struct {
	category      string
	search        string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve menu items.
// An empty category or search disables that filter. Filters combine with AND.
func NewGetMenuQuery(category, search string, availableOnly bool) GetMenuQuery {
	return GetMenuQuery{
		category:      category,
		search:        search,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the category filter, empty when unset.
func (q GetMenuQuery) Category() string {
	return q.category
}

// Search returns the name search term, empty when unset.
func (q GetMenuQuery) Search() string {
	return q.search
}

// AvailableOnly reports whether unavailable dishes are excluded.
func (q GetMenuQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetMenuQueryResponse represents one dish in the menu read model.
type GetMenuQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Category  string
	Price     kernel.Money
	ImageURL  string
	Available bool
}
