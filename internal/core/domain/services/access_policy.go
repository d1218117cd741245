package services

import (
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// OrderAccessPolicy is a domain service that decides what an actor may see
// and do with orders. Every mutating operation consults it before touching
// an aggregate, so role rules are enforced in one place regardless of which
// transport the request arrived on.
//
// Business rules:
//   - Customers see and act on their own orders only
//   - Staff see every order and may change any order's status
//   - Status mutation of any kind is a staff-only operation
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates a new OrderAccessPolicy instance.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// CanView reports whether the given profile may read the given order.
// Staff may view any order; customers only their own.
func (p OrderAccessPolicy) CanView(profile account.Profile, o *order.Order) (bool, error) {
	if err := profile.Validate(); err != nil {
		return false, err
	}
	if err := o.Validate(); err != nil {
		return false, err
	}

	if profile.Role().SeesAllOrders() {
		return true, nil
	}
	return o.OwnerID().IsEqual(profile.ID()), nil
}

// AuthorizeStatusChange returns nil when the profile is allowed to mutate
// order status, and a ForbiddenError naming the operation otherwise.
// The operation name is carried into the error for logging and responses.
func (p OrderAccessPolicy) AuthorizeStatusChange(profile account.Profile, operation string) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	if !profile.Role().CanManageOrders() {
		return errs.NewForbiddenError(operation, profile.Role().String())
	}
	return nil
}

// AuthorizeMenuChange returns nil when the profile is allowed to create,
// update or delete menu items, and a ForbiddenError otherwise.
func (p OrderAccessPolicy) AuthorizeMenuChange(profile account.Profile, operation string) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	if !profile.Role().CanManageMenu() {
		return errs.NewForbiddenError(operation, profile.Role().String())
	}
	return nil
}

// VisibleOwner returns the owner id orders must be filtered by for the
// given profile, or nil when the profile sees all orders. Read paths use
// it to build their queries without duplicating role checks.
func (p OrderAccessPolicy) VisibleOwner(profile account.Profile) (*kernel.UUID, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if profile.Role().SeesAllOrders() {
		return nil, nil
	}
	id := profile.ID()
	return &id, nil
}
