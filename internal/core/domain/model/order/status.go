package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the position of an order in the kitchen/delivery workflow.
//
//	Received ──> Preparing ──> Delivering ──> Completed
//	    ^            │  ^           │
//	    └────────────┘  └───────────┘
//	                      (admin)
//
// Canceled is a valid stored value used by filters; no workflow edge reaches it.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Received
	Preparing
	Delivering
	Completed
	Canceled
)

func statusCodes() map[Status]string {
	return map[Status]string{
		Received:   "received",
		Preparing:  "preparing",
		Delivering: "delivering",
		Completed:  "completed",
		Canceled:   "canceled",
	}
}

func statusLabels() map[Status]string {
	return map[Status]string{
		Received:   "Recebido",
		Preparing:  "Em preparo",
		Delivering: "Saiu para entrega",
		Completed:  "Concluído",
		Canceled:   "Cancelado",
	}
}

// ParseStatus converts the wire/storage code ("received", ...) into a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (s Status) String() string {
	if c, ok := statusCodes()[s]; ok {
		return c
	}
	return "unknown"
}

// Label returns the text shown in the status control.
func (s Status) Label() string {
	if l, ok := statusLabels()[s]; ok {
		return l
	}
	return "Desconhecido"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}
