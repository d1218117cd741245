package ports

import (
	"context"

	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for actor profiles.
// Profiles are created lazily on first login and never deleted, so the
// contract is intentionally narrow.
type ProfileRepository interface {
	// GetOrCreate retrieves the profile for the given identity, creating it
	// with the supplied role if no row exists yet. An existing profile's
	// stored role wins over the role passed in.
	GetOrCreate(ctx context.Context, id kernel.UUID, email string, role account.Role) (account.Profile, error)

	// Get retrieves the profile with the given identifier.
	Get(ctx context.Context, id kernel.UUID) (account.Profile, error)
}
