package queries

import (
	"context"
	"encoding/json"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVisibleOrdersQueryHandler retrieves role-scoped orders from the database.
// The owner filter is derived from the profile's role server-side, so a
// customer can never widen the result set by tampering with the request.
type GetVisibleOrdersQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.OrderAccessPolicy
}

// NewGetVisibleOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetVisibleOrdersQueryHandler(db *gorm.DB) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{
		db:           db,
		accessPolicy: services.NewOrderAccessPolicy(),
	}
}

// Handle executes the query to retrieve visible orders.
// Staff receive every order, customers only their own, both sorted newest
// first. Line item snapshots are decoded from their stored JSON form.
func (h GetVisibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleOrdersQuery,
) ([]GetVisibleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	owner, err := h.accessPolicy.VisibleOwner(query.Profile())
	if err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			owner_id,
			items,
			total,
			status,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)

	if owner != nil {
		sql += ` WHERE owner_id = ?`
		args = append(args, owner.String())
	}
	sql += ` ORDER BY created_at DESC`

	orders := make([]GetVisibleOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVisibleOrdersQueryResponse
		var id, ownerID uuid.UUID
		var items []byte
		var total string
		var status string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&ownerID,
			&items,
			&total,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = orderOwnerID

		if err = json.Unmarshal(items, &resp.Lines); err != nil {
			return nil, err
		}

		orderTotal, totalErr := kernel.MoneyFromString(total)
		if totalErr != nil {
			return nil, totalErr
		}
		resp.Total = orderTotal

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus

		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
