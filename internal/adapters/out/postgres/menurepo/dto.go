// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence, converting between the menu domain aggregate and its
// database representation.
package menurepo

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:text"`
	Category  string          `gorm:"type:text;index"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
	ImageURL  string          `gorm:"type:text"`
	Available bool
}

// TableName specifies the database table name for menu item entities.
// Overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        item.ID().Bytes(),
		Name:      item.Name(),
		Category:  item.Category(),
		Price:     item.Price().Decimal(),
		ImageURL:  item.ImageURL(),
		Available: item.Available(),
	}
}

// toDomain converts a database DTO to a menu item aggregate.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Category, price, dto.ImageURL, dto.Available)
}
