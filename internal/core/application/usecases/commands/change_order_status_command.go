package commands

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is a selection made in the order status control.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   access.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand accepts the target as its wire code ("preparing", ...).
func NewChangeOrderStatusCommand(orderID kernel.UUID, target string, actor access.Actor) (ChangeOrderStatusCommand, error) {
	status, statusErr := order.ParseStatus(target)
	if err := errors.Join(orderID.Validate(), statusErr, actor.Role.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return ChangeOrderStatusCommand{
		orderID: orderID,
		target:  status,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Target() order.Status { return c.target }
func (c ChangeOrderStatusCommand) Actor() access.Actor  { return c.actor }
