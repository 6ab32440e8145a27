package access

import (
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
)

// Permissions are the flags an admin toggles per employee in the team panel.
// They only widen what an employee can do; they never affect admins,
// motoboys or customers.
type Permissions struct {
	ManageOrders    bool
	ManageProducts  bool
	ManageSettings  bool
	ManageEmployees bool
	ViewReports     bool
}

const (
	permManageOrders    = "manage_orders"
	permManageProducts  = "manage_products"
	permManageSettings  = "manage_settings"
	permManageEmployees = "manage_employees"
	permViewReports     = "view_reports"
)

// PermissionsFromNames builds Permissions from their stored names; unknown names are ignored.
func PermissionsFromNames(names []string) Permissions {
	var p Permissions
	for _, n := range names {
		switch n {
		case permManageOrders:
			p.ManageOrders = true
		case permManageProducts:
			p.ManageProducts = true
		case permManageSettings:
			p.ManageSettings = true
		case permManageEmployees:
			p.ManageEmployees = true
		case permViewReports:
			p.ViewReports = true
		}
	}
	return p
}

// Names returns the granted flags in a fixed order, for persistence and transport.
func (p Permissions) Names() []string {
	names := make([]string, 0, 5)
	if p.ManageOrders {
		names = append(names, permManageOrders)
	}
	if p.ManageProducts {
		names = append(names, permManageProducts)
	}
	if p.ManageSettings {
		names = append(names, permManageSettings)
	}
	if p.ManageEmployees {
		names = append(names, permManageEmployees)
	}
	if p.ViewReports {
		names = append(names, permViewReports)
	}
	return names
}

// ParsePermissions is PermissionsFromNames for input from the team panel,
// where an unknown name is a mistake rather than a retired flag.
func ParsePermissions(names []string) (Permissions, error) {
	known := []string{permManageOrders, permManageProducts, permManageSettings, permManageEmployees, permViewReports}
	for _, n := range names {
		if !slices.Contains(known, n) {
			return Permissions{}, errs.NewValueIsInvalidErrorWithCause("permissions", fmt.Errorf("unknown permission %q", n))
		}
	}
	return PermissionsFromNames(names), nil
}
