package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetOrderStatusOptionsQueryIsNotConstructed = errors.New(
	"GetOrderStatusOptionsQuery must be created via NewGetOrderStatusOptionsQuery constructor",
)

// GetOrderStatusOptionsQuery asks which statuses the status control offers
// actor for one order.
type GetOrderStatusOptionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   access.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderStatusOptionsQuery(orderID kernel.UUID, actor access.Actor) (GetOrderStatusOptionsQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Role.Validate()); err != nil {
		return GetOrderStatusOptionsQuery{}, err
	}
	return GetOrderStatusOptionsQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusOptionsQueryIsNotConstructed)
}

func (q GetOrderStatusOptionsQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderStatusOptionsQuery) Actor() access.Actor  { return q.actor }

// GetOrderStatusOptionsQueryResponse holds the current status and the
// options in display order. Options is empty for terminal statuses and for
// roles without an edge out of the current one.
type GetOrderStatusOptionsQueryResponse struct {
	Current order.Status
	Options []order.TransitionOption
}

type GetOrderStatusOptionsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusOptionsQueryHandler(db *gorm.DB) GetOrderStatusOptionsQueryHandler {
	return GetOrderStatusOptionsQueryHandler{db: db}
}

func (h GetOrderStatusOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusOptionsQuery,
) (GetOrderStatusOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusOptionsQueryResponse{}, err
	}
	if err := query.Actor().Require(access.ManageOrders); err != nil {
		return GetOrderStatusOptionsQueryResponse{}, err
	}

	sql, args, err := sq.Select("status").
		From("orders").
		Where(sq.Eq{"id": query.OrderID().Bytes()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return GetOrderStatusOptionsQueryResponse{}, err
	}

	var codes []string
	if err = h.db.WithContext(ctx).Raw(sql, args...).Scan(&codes).Error; err != nil {
		return GetOrderStatusOptionsQueryResponse{}, err
	}
	if len(codes) == 0 {
		return GetOrderStatusOptionsQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	current, err := order.ParseStatus(codes[0])
	if err != nil {
		return GetOrderStatusOptionsQueryResponse{}, err
	}
	return GetOrderStatusOptionsQueryResponse{
		Current: current,
		Options: order.NextStatuses(current, query.Actor().Role),
	}, nil
}
