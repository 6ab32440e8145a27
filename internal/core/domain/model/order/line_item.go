package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Extra is an add-on chosen for a line item, e.g. "bacon" for +3.00.
type Extra struct {
	Name  string
	Price float64
}

// LineItem is one product in an order, priced when the order was placed.
type LineItem struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice float64
	extras    []Extra
}

// NewLineItem validates a line item. Quantity must be positive, prices non-negative.
func NewLineItem(productID kernel.UUID, name string, quantity int, unitPrice float64, extras []Extra) (LineItem, error) {
	var problems []error
	if err := productID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item name"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%.2f is negative", unitPrice)))
	}
	for _, e := range extras {
		if e.Price < 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("extra price", fmt.Errorf("%s costs %.2f", e.Name, e.Price)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unitPrice: unitPrice,
		extras:    append([]Extra(nil), extras...),
	}, nil
}

func (l LineItem) ProductID() kernel.UUID { return l.productID }
func (l LineItem) Name() string           { return l.name }
func (l LineItem) Quantity() int          { return l.quantity }
func (l LineItem) UnitPrice() float64     { return l.unitPrice }
func (l LineItem) Extras() []Extra        { return append([]Extra(nil), l.extras...) }

// Total is (unit price + extras) x quantity, rounded to cents.
func (l LineItem) Total() float64 {
	each := l.unitPrice
	for _, e := range l.extras {
		each += e.Price
	}
	return kernel.RoundAmount(each * float64(l.quantity))
}
