package account

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through the NewProfile constructor.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile binds a session identity to a role. The identity (id, email) is
// issued by the external auth collaborator and trusted as-is; the role is the
// only field this system owns.
type Profile struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	email string
	role  Role

	guard guard.ConstructorGuard
}

// NewProfile creates a profile for an authenticated actor.
// The id must be a constructed UUID, the email non-empty, and the role one of
// the valid values.
func NewProfile(id kernel.UUID, email string, role Role) (Profile, error) {
	profile := Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setEmail(email),
		profile.setRole(role),
	); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// Validate ensures the profile was created through the constructor.
func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (p Profile) ID() kernel.UUID {
	return p.id
}

// Email returns the actor's email as issued by the auth collaborator.
func (p Profile) Email() string {
	return p.email
}

// Role returns the actor's role.
func (p Profile) Role() Role {
	return p.role
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
