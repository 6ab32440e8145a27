package access

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Actor is the authenticated user behind a request, as resolved from a session.
type Actor struct {
	UserID      kernel.UUID
	Role        Role
	Permissions Permissions
}

// NewActor builds an actor; the role is trusted as given.
func NewActor(userID kernel.UUID, role Role, perms Permissions) Actor {
	return Actor{UserID: userID, Role: role, Permissions: perms}
}

// Actions returns AllowedActions for the actor.
func (a Actor) Actions() ActionSet {
	return AllowedActions(a.Role, a.Permissions)
}

// Can reports whether the actor holds action.
func (a Actor) Can(action Action) bool {
	return a.Actions().Has(action)
}

// Require returns an AccessDeniedError unless the actor holds action.
func (a Actor) Require(action Action) error {
	if !a.Can(action) {
		return errs.NewAccessDeniedError(string(action))
	}
	return nil
}
