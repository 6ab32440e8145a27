package access

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role is the permission class of the user acting on the storefront.
// Roles are supplied by the session and trusted as stored.
type Role string

const (
	Admin    Role = "admin"
	Employee Role = "employee"
	Motoboy  Role = "motoboy"
	Customer Role = "customer"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{Admin, Employee, Motoboy, Customer}
}

// ParseRole converts the stored/transport form into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects anything that is not one of Roles().
func (r Role) Validate() error {
	switch r {
	case Admin, Employee, Motoboy, Customer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
