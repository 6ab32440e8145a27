package queries

import (
	"context"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customerID, err := visibleCustomer(query.Actor(), query.CustomerID())
	if err != nil {
		return nil, err
	}

	builder := sq.Select().
		OrderBy("created_at DESC", "id").
		Limit(uint64(query.Limit()))
	if customerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": customerID.Bytes()})
	}
	if query.Status() != nil {
		builder = builder.Where(sq.Eq{"status": query.Status().String()})
	}

	return loadOrders(ctx, h.db, builder)
}

// visibleCustomer narrows the customer filter to what actor may read.
func visibleCustomer(actor access.Actor, requested *kernel.UUID) (*kernel.UUID, error) {
	if actor.Can(access.ViewOrders) {
		return requested, nil
	}
	if err := actor.Require(access.ViewOwnOrders); err != nil {
		return nil, err
	}
	own := actor.UserID
	return &own, nil
}
