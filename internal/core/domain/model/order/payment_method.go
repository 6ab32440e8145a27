package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is a label chosen at checkout; no gateway is involved.
type PaymentMethod string

const (
	Pix      PaymentMethod = "pix"
	Dinheiro PaymentMethod = "dinheiro"
	Cartao   PaymentMethod = "cartao"
)

// ParsePaymentMethod validates the wire form.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	switch m {
	case Pix, Dinheiro, Cartao:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not accepted", s))
	}
}
