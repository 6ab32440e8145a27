package commands

import (
	"context"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/notify"
)

// ProductCommandHandler handles catalog maintenance: create, update and
// delete. All three require catalog.manage.
type ProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   notify.Notifier
}

func NewProductCommandHandler(uowFactory CatalogUoWFactory, notifier notify.Notifier) ProductCommandHandler {
	return ProductCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Create stores a new product.
func (h ProductCommandHandler) Create(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.inTx(ctx, cmd.Actor(), func(uow CatalogUoW) error {
		return uow.ProductRepository().Add(ctx, cmd.Product())
	})
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Product created", Description: cmd.Product().Name()},
		notify.Notification{Title: "Could not create product"})
}

// Update replaces the details of a product.
func (h ProductCommandHandler) Update(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	err := h.inTx(ctx, cmd.Actor(), func(uow CatalogUoW) error {
		repo := uow.ProductRepository()
		p, err := repo.Get(ctx, cmd.ProductID())
		if err != nil {
			return err
		}
		if err = p.Update(d.Name, d.Description, d.Category, d.Price, d.Available, d.Extras); err != nil {
			return err
		}
		return repo.Update(ctx, p)
	})
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Product updated", Description: d.Name},
		notify.Notification{Title: "Could not update product"})
}

// Delete removes a product.
func (h ProductCommandHandler) Delete(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.inTx(ctx, cmd.Actor(), func(uow CatalogUoW) error {
		return uow.ProductRepository().Delete(ctx, cmd.ProductID())
	})
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Product deleted"},
		notify.Notification{Title: "Could not delete product"})
}

func (h ProductCommandHandler) inTx(ctx context.Context, actor access.Actor, fn func(CatalogUoW) error) error {
	if err := actor.Require(access.ManageCatalog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
