package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the menu read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetMenuQueryHandler(db)
//	query := NewGetMenuQuery("", "", true)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to load menu: %v", err)
//	    return err
//	}
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve menu items.
// Applies the query's category, search, and availability filters, and sorts
// by category then name for stable menu rendering.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			price,
			image_url,
			available
		FROM menu_items
		WHERE TRUE
	`
	args := make([]any, 0, 2)

	if query.AvailableOnly() {
		sql += ` AND available`
	}
	if query.Category() != "" {
		sql += ` AND category = ?`
		args = append(args, query.Category())
	}
	if query.Search() != "" {
		sql += ` AND name ILIKE ?`
		args = append(args, "%"+query.Search()+"%")
	}
	sql += ` ORDER BY category, name`

	items := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetMenuQueryResponse
		var id uuid.UUID
		var price string

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Category,
			&price,
			&item.ImageURL,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		itemPrice, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = itemPrice

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
