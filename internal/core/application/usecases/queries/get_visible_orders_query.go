package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
	"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
)

// GetVisibleOrdersQuery retrieves the orders the given profile is allowed to
// see: all orders for staff, own orders for customers. The scoping happens
// inside the handler's SQL, never in the client.
//
// Example:
//
//	query, err := NewGetVisibleOrdersQuery(profile)
//	if err != nil {
//	    return fmt.Errorf("invalid orders request: %w", err)
//	}
//
//	handler := NewGetVisibleOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetVisibleOrdersQuery struct { //nolint:recvcheck //using for validation
	profile account.Profile

	guard guard.ConstructorGuard
}

// NewGetVisibleOrdersQuery creates a query scoped to the given profile.
func NewGetVisibleOrdersQuery(profile account.Profile) (GetVisibleOrdersQuery, error) {
	query := GetVisibleOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProfile(profile); err != nil {
		return GetVisibleOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVisibleOrdersQueryIsNotConstructed if validation fails.
func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// Profile returns the profile the result set is scoped to.
func (q GetVisibleOrdersQuery) Profile() account.Profile {
	return q.profile
}

func (q *GetVisibleOrdersQuery) setProfile(profile account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	q.profile = profile
	return nil
}

// GetVisibleOrdersQueryLine represents one snapshotted line of an order in
// the read model.
type GetVisibleOrdersQueryLine struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// GetVisibleOrdersQueryResponse represents one order in the read model,
// newest first.
type GetVisibleOrdersQueryResponse struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Lines     []GetVisibleOrdersQueryLine
	Total     kernel.Money
	Status    order.Status
	CreatedAt time.Time
}
