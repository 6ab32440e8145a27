package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/notify"
)

// ChangeOrderStatusCommandHandler applies a status transition.
//
// The target is checked again against the options the policy offers the
// actor's role for the order's stored status, so a stale or forged request
// fails with a PolicyViolationError and the order is left untouched. Each
// call emits exactly one notification. There is no version check: when two
// staff members change the same order, the last commit wins.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   notify.Notifier
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier notify.Notifier) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.apply(ctx, cmd)
	return finish(ctx, h.notifier, err,
		notify.Notification{
			Title:       "Order status updated",
			Description: fmt.Sprintf("Order is now %s", cmd.Target().Label()),
		},
		notify.Notification{Title: "Could not update order status"})
}

func (h ChangeOrderStatusCommandHandler) apply(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Actor().Require(access.ManageOrders); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Target(), cmd.Actor().Role); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
