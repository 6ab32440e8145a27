package access

import (
	"slices"
)

// Action is a capability checked by use cases and route guards.
type Action string

const (
	ViewCatalog   Action = "catalog.view"
	ManageCatalog Action = "catalog.manage"

	PlaceOrder    Action = "orders.place"
	ViewOwnOrders Action = "orders.view_own"
	ViewOrders    Action = "orders.view"
	ManageOrders  Action = "orders.manage"

	// CompleteDelivery gates delivering -> completed.
	CompleteDelivery Action = "orders.complete_delivery"
	// RecallDelivery gates delivering -> preparing.
	RecallDelivery Action = "orders.recall_delivery"

	ManageSettings  Action = "settings.manage"
	ManageEmployees Action = "employees.manage"
	ViewReports     Action = "reports.view"
)

// ActionSet is an immutable set of actions.
type ActionSet struct {
	actions map[Action]struct{}
}

// NewActionSet builds a set from the given actions.
func NewActionSet(actions ...Action) ActionSet {
	m := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		m[a] = struct{}{}
	}
	return ActionSet{actions: m}
}

// Has reports whether the set contains a.
func (s ActionSet) Has(a Action) bool {
	_, ok := s.actions[a]
	return ok
}

// Len returns the number of actions in the set.
func (s ActionSet) Len() int {
	return len(s.actions)
}

// Sorted returns the actions in lexical order.
func (s ActionSet) Sorted() []Action {
	out := make([]Action, 0, len(s.actions))
	for a := range s.actions {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// AllowedActions derives the capability set of an actor.
//
//   - admin: everything except CompleteDelivery (only the motoboy closes a delivery)
//   - employee: ViewOrders plus one action per granted permission
//   - motoboy: ViewOrders, ManageOrders, CompleteDelivery
//   - customer: PlaceOrder, ViewOwnOrders
//
// Every role can view the catalog. Unknown roles get nothing.
func AllowedActions(role Role, perms Permissions) ActionSet {
	switch role {
	case Admin:
		return NewActionSet(
			ViewCatalog, ManageCatalog,
			ViewOrders, ManageOrders, RecallDelivery,
			ManageSettings, ManageEmployees, ViewReports,
		)
	case Employee:
		actions := []Action{ViewCatalog, ViewOrders}
		if perms.ManageOrders {
			actions = append(actions, ManageOrders)
		}
		if perms.ManageProducts {
			actions = append(actions, ManageCatalog)
		}
		if perms.ManageSettings {
			actions = append(actions, ManageSettings)
		}
		if perms.ManageEmployees {
			actions = append(actions, ManageEmployees)
		}
		if perms.ViewReports {
			actions = append(actions, ViewReports)
		}
		return NewActionSet(actions...)
	case Motoboy:
		return NewActionSet(ViewCatalog, ViewOrders, ManageOrders, CompleteDelivery)
	case Customer:
		return NewActionSet(ViewCatalog, PlaceOrder, ViewOwnOrders)
	default:
		return NewActionSet()
	}
}
