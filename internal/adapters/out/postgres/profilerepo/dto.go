// Package profilerepo provides data transfer objects and mapping functions
// for actor profile persistence.
package profilerepo

import (
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profiles.
// The role is stored as text so unknown future values degrade readably.
type ProfileDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:text"`
	Role  string    `gorm:"type:text"`
}

// TableName specifies the database table name for profile entities.
// Overrides GORM's default naming convention to use "profiles".
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile to its database representation.
func fromDomain(profile account.Profile) ProfileDTO {
	return ProfileDTO{
		ID:    profile.ID().Bytes(),
		Email: profile.Email(),
		Role:  profile.Role().String(),
	}
}

// toDomain converts a database DTO to a profile.
// An unrecognized stored role falls back to customer, never to staff.
func toDomain(dto ProfileDTO) (account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.Profile{}, err
	}

	return account.NewProfile(id, dto.Email, account.RoleFromString(dto.Role))
}
