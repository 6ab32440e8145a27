package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error

	// Delete removes a product. Placed orders keep their own copy of name and
	// price, so history is unaffected.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetMany returns the products that exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
