// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as a JSON snapshot column rather than a child table:
// they are immutable after submission and always read as a whole.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;index"`
	Items     LineItemsDTO    `gorm:"type:jsonb"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status    string          `gorm:"type:text;index"`
	CreatedAt time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the stored form of one order line snapshot.
// The price is kept as a fixed-point string to avoid any float round trip.
type LineItemDTO struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// LineItemsDTO maps the line item snapshots to a single jsonb column.
type LineItemsDTO []LineItemDTO

// Value serializes the line items for storage.
func (l LineItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan deserializes the line items from their stored jsonb form.
func (l *LineItemsDTO) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for LineItemsDTO")
	}

	return json.Unmarshal(raw, l)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	items := make(LineItemsDTO, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, LineItemDTO{
			Name:     item.Name(),
			Price:    item.Price().String(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Items:     items,
		Total:     aggregate.Total().Decimal(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate from its stored snapshot using
// RestoreOrder, trusting the stored total over any recomputation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		price, priceErr := kernel.MoneyFromString(item.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		lineItem, itemErr := order.NewLineItem(item.Name, price, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, lineItems, total, status, dto.CreatedAt)
}
