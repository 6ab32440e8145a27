package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/notify"
)

// PlaceOrderCommandHandler runs checkout: it prices the cart against the
// current catalog and settings and stores the order in Received status, all in
// one transaction. The order.placed event reaches the outbox on commit.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.OrderPricer
	notifier   notify.Notifier
	clock      func() time.Time
}

// NewPlaceOrderCommandHandler creates the checkout handler. clock returns the
// current time in the store's time zone; working hours are checked against it.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier notify.Notifier,
	clock func() time.Time,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.place(ctx, cmd)

	success := notify.Notification{Title: "Order placed"}
	if placed != nil {
		success.Description = fmt.Sprintf("Total %.2f, paid with %s", placed.Total(), placed.PaymentMethod())
	}
	if err = finish(ctx, h.notifier, err, success, notify.Notification{Title: "Could not place order"}); err != nil {
		return nil, err
	}
	return placed, nil
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Actor().Require(access.PlaceOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	found, err := uow.ProductRepository().GetMany(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}
	products := make(map[string]*catalog.Product, len(found))
	for _, p := range found {
		products[p.ID().String()] = p
	}

	placed, err := h.pricer.Price(store, products, services.Checkout{
		OrderID:       cmd.OrderID(),
		CustomerID:    cmd.Actor().UserID,
		Lines:         cmd.Lines(),
		Destination:   cmd.Destination(),
		PaymentMethod: cmd.PaymentMethod(),
		At:            h.clock(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
