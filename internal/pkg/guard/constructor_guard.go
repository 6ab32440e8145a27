// Package guard provides the constructor guard used by commands, queries and
// domain objects to reject zero values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a
// struct and call Validate from the struct's own Validate method:
//
//	type SaveDeliveryTiersCommand struct {
//	    tiers []settings.DeliveryTier
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SaveDeliveryTiersCommand) Validate() error {
//	    return c.guard.Validate(ErrSaveDeliveryTiersCommandIsNotConstructed)
//	}
//
// The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
