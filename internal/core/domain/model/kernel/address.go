package kernel

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or PickupAddress constructors")

// Address is where an order goes. An order picked up at the store carries the
// pickup sentinel instead of a postal address; IsPickup tells them apart.
type Address struct { //nolint:recvcheck //using for validation
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	zipCode      string
	pickup       bool
	guard        guard.ConstructorGuard
}

// NewAddress builds a postal delivery address. Street, number, neighborhood and
// city are required; complement and zip code are optional.
func NewAddress(street, number, complement, neighborhood, city, zipCode string) (Address, error) {
	a := Address{
		complement: strings.TrimSpace(complement),
		zipCode:    strings.TrimSpace(zipCode),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setRequired(&a.street, "street", street),
		setRequired(&a.number, "number", number),
		setRequired(&a.neighborhood, "neighborhood", neighborhood),
		setRequired(&a.city, "city", city),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// PickupAddress returns the sentinel used for in-store pickup orders.
func PickupAddress() Address {
	return Address{pickup: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the address was built by a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) IsPickup() bool       { return a.pickup }
func (a Address) Street() string       { return a.street }
func (a Address) Number() string       { return a.number }
func (a Address) Complement() string   { return a.complement }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) City() string         { return a.city }
func (a Address) ZipCode() string      { return a.zipCode }

// String renders the address on one line, e.g. "Rua A, 10 - Centro, Recife".
func (a Address) String() string {
	if a.pickup {
		return "pickup"
	}
	line := fmt.Sprintf("%s, %s", a.street, a.number)
	if a.complement != "" {
		line += " " + a.complement
	}
	return fmt.Sprintf("%s - %s, %s", line, a.neighborhood, a.city)
}

func setRequired(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
