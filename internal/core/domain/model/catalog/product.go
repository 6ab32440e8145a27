package catalog

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned for a Product not built by NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ErrProductIsUnavailable is returned when ordering a product that is switched off.
var ErrProductIsUnavailable = errors.New("product is unavailable")

// Extra is a paid add-on offered with a product.
type Extra struct {
	Name  string
	Price float64
}

// Product is an item of the menu.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    string
	price       float64
	available   bool
	extras      []Extra

	isConstructed bool
}

// NewProduct creates an available product.
//
// Example:
//
//	p, err := catalog.NewProduct(kernel.NewUUID(), "X-Burger", "pão, carne e queijo", "burgers", 25.90,
//	    []catalog.Extra{{Name: "bacon", Price: 3}})
func NewProduct(id kernel.UUID, name, description, category string, price float64, extras []Extra) (*Product, error) {
	return RestoreProduct(id, name, description, category, price, true, extras)
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.UUID,
	name, description, category string,
	price float64,
	available bool,
	extras []Extra,
) (*Product, error) {
	p := &Product{isConstructed: true, available: available}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(name, description, category),
		p.setPrice(price),
		p.setExtras(extras),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate ensures the product was built by a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID     { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() string    { return p.category }
func (p *Product) Price() float64      { return p.price }
func (p *Product) IsAvailable() bool   { return p.available }

// Extras returns a copy of the offered extras.
func (p *Product) Extras() []Extra {
	return append([]Extra(nil), p.extras...)
}

// FindExtra looks an extra up by name, case-insensitively.
func (p *Product) FindExtra(name string) (Extra, bool) {
	for _, e := range p.extras {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, true
		}
	}
	return Extra{}, false
}

// Update replaces every editable field at once. On error the product is unchanged.
func (p *Product) Update(name, description, category string, price float64, available bool, extras []Extra) error {
	next := *p
	if err := errors.Join(
		next.setDetails(name, description, category),
		next.setPrice(price),
		next.setExtras(extras),
	); err != nil {
		return err
	}
	next.available = available
	*p = next
	return nil
}

// SetAvailable switches the product on or off the menu.
func (p *Product) SetAvailable(available bool) {
	p.available = available
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDetails(name, description, category string) error {
	name = strings.TrimSpace(name)
	category = strings.ToLower(strings.TrimSpace(category))
	var problems []error
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if category == "" {
		problems = append(problems, errs.NewValueIsRequiredError("category"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	p.name = name
	p.description = strings.TrimSpace(description)
	p.category = category
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%.2f is negative", price))
	}
	p.price = kernel.RoundAmount(price)
	return nil
}

func (p *Product) setExtras(extras []Extra) error {
	seen := make(map[string]struct{}, len(extras))
	out := make([]Extra, 0, len(extras))
	for _, e := range extras {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return errs.NewValueIsRequiredError("extra name")
		}
		if e.Price < 0 {
			return errs.NewValueIsInvalidErrorWithCause("extra price", fmt.Errorf("%s costs %.2f", name, e.Price))
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return errs.NewValueIsInvalidErrorWithCause("extras", fmt.Errorf("%q is listed twice", name))
		}
		seen[key] = struct{}{}
		out = append(out, Extra{Name: name, Price: kernel.RoundAmount(e.Price)})
	}
	p.extras = out
	return nil
}
