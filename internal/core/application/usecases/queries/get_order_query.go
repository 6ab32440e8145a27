package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   access.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor access.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Role.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() access.Actor  { return q.actor }

// GetOrderQueryHandler returns one order. Another customer's order is
// reported as not found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	customerID, err := visibleCustomer(query.Actor(), nil)
	if err != nil {
		return OrderView{}, err
	}

	builder := sq.Select().Where(sq.Eq{"id": query.OrderID().Bytes()})
	if customerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": customerID.Bytes()})
	}

	views, err := loadOrders(ctx, h.db, builder)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return views[0], nil
}
