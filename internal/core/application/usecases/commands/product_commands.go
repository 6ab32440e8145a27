package commands

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// ProductDetails are the editable fields of a product.
type ProductDetails struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Available   bool
	Extras      []catalog.Extra
}

// CreateProductCommand adds a product to the menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	product *catalog.Product

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the details by building the product.
func NewCreateProductCommand(actor access.Actor, d ProductDetails) (CreateProductCommand, error) {
	p, err := catalog.RestoreProduct(kernel.NewUUID(), d.Name, d.Description, d.Category, d.Price, d.Available, d.Extras)
	if err = errors.Join(actor.Role.Validate(), err); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{actor: actor, product: p, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() access.Actor       { return c.actor }
func (c CreateProductCommand) ProductID() kernel.UUID    { return c.product.ID() }
func (c CreateProductCommand) Product() *catalog.Product { return c.product }

// UpdateProductCommand replaces the details of an existing product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	productID kernel.UUID
	details   ProductDetails

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(actor access.Actor, productID kernel.UUID, d ProductDetails) (UpdateProductCommand, error) {
	if err := errors.Join(actor.Role.Validate(), productID.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}
	d.Extras = append([]catalog.Extra(nil), d.Extras...)
	return UpdateProductCommand{actor: actor, productID: productID, details: d, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Actor() access.Actor     { return c.actor }
func (c UpdateProductCommand) ProductID() kernel.UUID  { return c.productID }
func (c UpdateProductCommand) Details() ProductDetails { return c.details }

// DeleteProductCommand removes a product from the menu.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(actor access.Actor, productID kernel.UUID) (DeleteProductCommand, error) {
	if err := errors.Join(actor.Role.Validate(), productID.Validate()); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{actor: actor, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) Actor() access.Actor    { return c.actor }
func (c DeleteProductCommand) ProductID() kernel.UUID { return c.productID }
