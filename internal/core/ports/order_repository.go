// Package ports defines repository, cache and publisher interfaces for the
// storefront domain. Adapters implement them; use cases depend only on them.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Line items never change
	// after checkout. Last writer wins; there is no version check.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
