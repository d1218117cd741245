package profilerepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetOrCreate retrieves the profile for the given identity, creating it
// lazily on first login. A stored role always wins over the role passed in,
// so a customer cannot escalate by replaying a login with a staff claim.
func (r *GormProfileRepository) GetOrCreate(
	ctx context.Context,
	id kernel.UUID,
	email string,
	role account.Role,
) (account.Profile, error) {
	if err := id.Validate(); err != nil {
		return account.Profile{}, err
	}

	var dto ProfileDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account.Profile{}, errs.NewStoreUnavailableError("get profile", err)
	}

	profile, err := account.NewProfile(id, email, role)
	if err != nil {
		return account.Profile{}, err
	}

	dto = fromDomain(profile)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return account.Profile{}, errs.NewStoreUnavailableError("create profile", err)
	}

	return profile, nil
}

// Get retrieves the profile with the given ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (account.Profile, error) {
	if err := id.Validate(); err != nil {
		return account.Profile{}, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Profile{}, errs.NewObjectNotFoundError("profile", id.String())
		}
		return account.Profile{}, errs.NewStoreUnavailableError("get profile", err)
	}

	return toDomain(dto)
}
