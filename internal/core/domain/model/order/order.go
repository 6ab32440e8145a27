package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when checking out an empty cart.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is a customer purchase, from checkout until delivery.
//
// Order follows these invariants:
//   - At least one line item
//   - Total equals the sum of line totals plus the delivery fee
//   - Pickup orders carry no delivery fee
//   - Status only changes through transitions offered by NextStatuses
//   - createdAt never changes once set
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []LineItem
	deliveryFee   float64
	paymentMethod PaymentMethod
	address       kernel.Address
	status        Status
	createdAt     time.Time

	events []Event

	isConstructed bool
}

// NewOrder places an order in Received status and records EventPlaced.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "X-Burger", 2, 25.90, nil)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item}, 8.0,
//	    order.Pix, address, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryFee float64,
	paymentMethod PaymentMethod,
	address kernel.Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		paymentMethod: paymentMethod,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setItems(items),
		o.setAddressAndFee(address, deliveryFee),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.record(EventPlaced, Unknown, Received)
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage without recording events.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryFee float64,
	paymentMethod PaymentMethod,
	address kernel.Address,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, deliveryFee, paymentMethod, address, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.events = nil
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) DeliveryFee() float64         { return o.deliveryFee }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Address() kernel.Address      { return o.address }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Subtotal is the sum of line totals.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, it := range o.items {
		sum += it.Total()
	}
	return kernel.RoundAmount(sum)
}

// Total is Subtotal plus the delivery fee.
func (o *Order) Total() float64 {
	return kernel.RoundAmount(o.Subtotal() + o.deliveryFee)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Options returns the transitions role may apply right now.
func (o *Order) Options(role access.Role) []TransitionOption {
	return NextStatuses(o.status, role)
}

// ChangeStatus moves the order to target. The target is checked against the
// options offered to role, whatever the caller showed to the user; anything
// else is a PolicyViolationError and leaves the order untouched.
func (o *Order) ChangeStatus(target Status, role access.Role) error {
	if err := CheckTransition(o.status, target, role); err != nil {
		return err
	}
	from := o.status
	o.status = target
	o.record(EventStatusChanged, from, target)
	return nil
}

// Events returns the events recorded since the order was loaded or placed.
func (o *Order) Events() []Event {
	return append([]Event(nil), o.events...)
}

// ClearEvents drops recorded events once they are stored in the outbox.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) record(name string, from, to Status) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Name:       name,
		OrderID:    o.id,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setAddressAndFee(address kernel.Address, fee float64) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%.2f is negative", fee))
	}
	if address.IsPickup() && fee != 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", errors.New("pickup orders have no delivery fee"))
	}
	o.address = address
	o.deliveryFee = kernel.RoundAmount(fee)
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	_, err := ParsePaymentMethod(string(m))
	return err
}
