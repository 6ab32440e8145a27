package queries

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ProductOrder is the sort key of the catalog list.
type ProductOrder string

const (
	ProductsByName  ProductOrder = "name"
	ProductsByPrice ProductOrder = "price"
)

// ListProductsQuery filters the catalog.
//
// Example:
//
//	query, err := NewListProductsQuery("pizzas", true, ProductsByPrice)
//	products, err := NewListProductsQueryHandler(db).Handle(ctx, query)
type ListProductsQuery struct { //nolint:recvcheck //using for validation
	category      string
	onlyAvailable bool
	orderBy       ProductOrder

	guard guard.ConstructorGuard
}

// NewListProductsQuery builds the filter. An empty category matches every
// category; an empty orderBy sorts by name.
func NewListProductsQuery(category string, onlyAvailable bool, orderBy ProductOrder) (ListProductsQuery, error) {
	switch orderBy {
	case "":
		orderBy = ProductsByName
	case ProductsByName, ProductsByPrice:
	default:
		return ListProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order by", fmt.Errorf("%q is not a sort key", orderBy))
	}
	return ListProductsQuery{
		category:      strings.TrimSpace(category),
		onlyAvailable: onlyAvailable,
		orderBy:       orderBy,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Category() string      { return q.category }
func (q ListProductsQuery) OnlyAvailable() bool   { return q.onlyAvailable }
func (q ListProductsQuery) OrderBy() ProductOrder { return q.orderBy }

// ProductView is a catalog entry as shown on the menu.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       float64
	Available   bool
	Extras      []ExtraView
}

// ExtraView is an add-on with its price.
type ExtraView struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
