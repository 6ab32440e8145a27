package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateStoreProfileCommandIsNotConstructed = errors.New(
	"UpdateStoreProfileCommand must be created via NewUpdateStoreProfileCommand constructor",
)

// UpdateStoreProfileCommand renames the store and toggles pickup.
type UpdateStoreProfileCommand struct { //nolint:recvcheck //using for validation
	actor         access.Actor
	storeName     string
	pickupEnabled bool

	guard guard.ConstructorGuard
}

func NewUpdateStoreProfileCommand(actor access.Actor, storeName string, pickupEnabled bool) (UpdateStoreProfileCommand, error) {
	var nameErr error
	storeName = strings.TrimSpace(storeName)
	if storeName == "" {
		nameErr = errs.NewValueIsRequiredError("storeName")
	}
	if err := errors.Join(actor.Role.Validate(), nameErr); err != nil {
		return UpdateStoreProfileCommand{}, err
	}
	return UpdateStoreProfileCommand{
		actor:         actor,
		storeName:     storeName,
		pickupEnabled: pickupEnabled,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStoreProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreProfileCommandIsNotConstructed)
}

func (c UpdateStoreProfileCommand) Actor() access.Actor { return c.actor }
func (c UpdateStoreProfileCommand) StoreName() string   { return c.storeName }
func (c UpdateStoreProfileCommand) PickupEnabled() bool { return c.pickupEnabled }
