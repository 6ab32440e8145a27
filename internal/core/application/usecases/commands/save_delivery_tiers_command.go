package commands

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/guard"
)

var ErrSaveDeliveryTiersCommandIsNotConstructed = errors.New(
	"SaveDeliveryTiersCommand must be created via NewSaveDeliveryTiersCommand constructor",
)

// SaveDeliveryTiersCommand replaces the delivery fee table.
// Tiers are checked by the handler, not by the constructor, so that the editor
// receives the full list of problems as a notification.
//
// Example:
//
//	cmd, err := NewSaveDeliveryTiersCommand(actor, []settings.DeliveryTier{
//	    {MinDistance: 0, MaxDistance: 3, Fee: 4},
//	    {MinDistance: 3, MaxDistance: 8, Fee: 9},
//	})
type SaveDeliveryTiersCommand struct { //nolint:recvcheck //using for validation
	actor access.Actor
	tiers []settings.DeliveryTier

	guard guard.ConstructorGuard
}

func NewSaveDeliveryTiersCommand(actor access.Actor, tiers []settings.DeliveryTier) (SaveDeliveryTiersCommand, error) {
	if err := actor.Role.Validate(); err != nil {
		return SaveDeliveryTiersCommand{}, err
	}
	return SaveDeliveryTiersCommand{
		actor: actor,
		tiers: append([]settings.DeliveryTier(nil), tiers...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SaveDeliveryTiersCommand) Validate() error {
	return c.guard.Validate(ErrSaveDeliveryTiersCommandIsNotConstructed)
}

func (c SaveDeliveryTiersCommand) Actor() access.Actor { return c.actor }

func (c SaveDeliveryTiersCommand) Tiers() []settings.DeliveryTier {
	return append([]settings.DeliveryTier(nil), c.tiers...)
}
