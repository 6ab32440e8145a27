package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"
)

var (
	// ErrStoreIsClosed is returned when checking out outside working hours.
	ErrStoreIsClosed = errors.New("store is closed")

	// ErrPickupIsDisabled is returned for pickup orders when the store does not offer pickup.
	ErrPickupIsDisabled = errors.New("pickup is not available")
)

// CartLine is one entry of the customer's cart as sent at checkout. Prices
// are never taken from the client; only the product, quantity and chosen
// extra names are.
type CartLine struct {
	ProductID kernel.UUID
	Quantity  int
	Extras    []string
}

// Destination is where the order goes. DistanceKm is ignored for pickup.
type Destination struct {
	Address    kernel.Address
	DistanceKm float64
}

// Checkout describes a cart ready to become an order.
type Checkout struct {
	OrderID       kernel.UUID
	CustomerID    kernel.UUID
	Lines         []CartLine
	Destination   Destination
	PaymentMethod order.PaymentMethod
	At            time.Time
}

// OrderPricer turns a cart into an Order, pricing every line from the
// catalog and the delivery fee from the store's delivery tiers.
//
// Business rules:
//   - The store must be open at checkout time
//   - Every product must exist and be available
//   - Extras must be offered by their product
//   - Pickup orders have no delivery fee and need pickup enabled
//   - Delivery orders pay the fee of the tier covering their distance
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	o, err := pricer.Price(storeSettings, products, checkout)
//	if errors.Is(err, services.ErrStoreIsClosed) {
//	    // tell the customer when the store opens
//	}
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price builds the order for checkout. products must contain every product
// referenced by the cart, keyed by ID string; missing ones are ObjectNotFound.
func (p OrderPricer) Price(
	store *settings.StoreSettings,
	products map[string]*catalog.Product,
	checkout Checkout,
) (*order.Order, error) {
	if err := store.Validate(); err != nil {
		return nil, err
	}

	if !store.IsOpenAt(checkout.At) {
		return nil, ErrStoreIsClosed
	}

	fee, err := p.deliveryFee(store, checkout.Destination)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(checkout.Lines))
	var problems []error
	for _, line := range checkout.Lines {
		item, lineErr := p.priceLine(products, line)
		if lineErr != nil {
			problems = append(problems, lineErr)
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(problems...); err != nil {
		return nil, err
	}

	return order.NewOrder(
		checkout.OrderID,
		checkout.CustomerID,
		items,
		fee,
		checkout.PaymentMethod,
		checkout.Destination.Address,
		checkout.At,
	)
}

func (p OrderPricer) deliveryFee(store *settings.StoreSettings, dest Destination) (float64, error) {
	if err := dest.Address.Validate(); err != nil {
		return 0, err
	}
	if dest.Address.IsPickup() {
		if !store.PickupEnabled() {
			return 0, ErrPickupIsDisabled
		}
		return 0, nil
	}
	return store.QuoteDeliveryFee(dest.DistanceKm)
}

func (p OrderPricer) priceLine(products map[string]*catalog.Product, line CartLine) (order.LineItem, error) {
	product, ok := products[line.ProductID.String()]
	if !ok {
		return order.LineItem{}, errs.NewObjectNotFoundError("product", line.ProductID.String())
	}
	if !product.IsAvailable() {
		return order.LineItem{}, fmt.Errorf("%w: %s", catalog.ErrProductIsUnavailable, product.Name())
	}

	extras := make([]order.Extra, 0, len(line.Extras))
	for _, name := range line.Extras {
		extra, found := product.FindExtra(name)
		if !found {
			return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause("extra",
				fmt.Errorf("%s does not offer %q", product.Name(), name))
		}
		extras = append(extras, order.Extra{Name: extra.Name, Price: extra.Price})
	}

	return order.NewLineItem(product.ID(), product.Name(), line.Quantity, product.Price(), extras)
}
