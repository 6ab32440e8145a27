package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a customer's checkout request.
//
// Example:
//
//	address, _ := kernel.NewAddress("Rua das Flores", "120", "", "Centro", "Recife", "")
//	cmd, err := NewPlaceOrderCommand(actor,
//	    []services.CartLine{{ProductID: burgerID, Quantity: 2, Extras: []string{"bacon"}}},
//	    services.Destination{Address: address, DistanceKm: 2.4},
//	    "pix")
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         access.Actor
	lines         []services.CartLine
	destination   services.Destination
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	actor access.Actor,
	lines []services.CartLine,
	destination services.Destination,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		orderID:     kernel.NewUUID(),
		actor:       actor,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.UserID.Validate(),
		cmd.setLines(lines),
		cmd.setDestination(destination),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c PlaceOrderCommand) Actor() access.Actor                { return c.actor }
func (c PlaceOrderCommand) Destination() services.Destination  { return c.destination }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c PlaceOrderCommand) Lines() []services.CartLine {
	return append([]services.CartLine(nil), c.lines...)
}

// ProductIDs returns the distinct products referenced by the cart.
func (c PlaceOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[string]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.ProductID.String()]; ok {
			continue
		}
		seen[l.ProductID.String()] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return order.ErrOrderHasNoItems
	}
	for i, l := range lines {
		if err := l.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].product", i), err)
		}
		if l.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", l.Quantity))
		}
	}
	c.lines = append([]services.CartLine(nil), lines...)
	return nil
}

func (c *PlaceOrderCommand) setDestination(d services.Destination) error {
	if err := d.Address.Validate(); err != nil {
		return err
	}
	if !d.Address.IsPickup() && d.DistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%.2f is negative", d.DistanceKm))
	}
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(m string) error {
	method, err := order.ParsePaymentMethod(m)
	if err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
