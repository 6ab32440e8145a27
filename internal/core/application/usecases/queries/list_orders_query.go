package queries

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultOrdersLimit = 50
	MaxOrdersLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first. Staff with orders.view see every
// order; customers only ever see their own, whatever customerID says.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status     *order.Status
	customerID *kernel.UUID
	limit      int
	actor      access.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the filter. Empty status and nil customerID match
// everything; a zero limit means DefaultOrdersLimit.
func NewListOrdersQuery(status string, customerID *kernel.UUID, limit int, actor access.Actor) (ListOrdersQuery, error) {
	q := ListOrdersQuery{limit: limit, actor: actor}
	var problems []error

	if status != "" {
		s, err := order.ParseStatus(status)
		problems = append(problems, err)
		q.status = &s
	}
	if customerID != nil {
		problems = append(problems, customerID.Validate())
		q.customerID = customerID
	}
	switch {
	case limit == 0:
		q.limit = DefaultOrdersLimit
	case limit < 0 || limit > MaxOrdersLimit:
		problems = append(problems, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersLimit))
	}
	problems = append(problems, actor.Role.Validate())

	if err := errors.Join(problems...); err != nil {
		return ListOrdersQuery{}, err
	}
	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status    { return q.status }
func (q ListOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }
func (q ListOrdersQuery) Limit() int               { return q.limit }
func (q ListOrdersQuery) Actor() access.Actor      { return q.actor }
