package menurepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add menu item", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing menu item to the database.
// Uses Select("*") so that clearing the image URL or flipping availability
// off is persisted despite being zero values.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the menu item with the given ID.
func (r *GormMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreUnavailableError("delete menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get menu item", err)
	}

	return toDomain(dto)
}
