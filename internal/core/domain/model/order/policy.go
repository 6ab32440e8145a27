package order

import (
	"fmt"
	"slices"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/errs"
)

// TransitionOption is one entry of the status-change control.
type TransitionOption struct {
	Status Status
	Label  string
}

// transition is an edge of the workflow. A zero gate means any actor who can
// reach the status control may use the edge.
type transition struct {
	from Status
	to   Status
	gate access.Action
}

// transitions lists the edges in display order: forward first, then backward.
var transitions = []transition{
	{from: Received, to: Preparing},
	{from: Preparing, to: Delivering},
	{from: Preparing, to: Received},
	{from: Delivering, to: Completed, gate: access.CompleteDelivery},
	{from: Delivering, to: Preparing, gate: access.RecallDelivery},
}

// NextStatuses returns the statuses role may move an order to from current.
// The result depends only on its arguments and keeps a fixed order; an empty
// result means nothing is available to this role right now.
func NextStatuses(current Status, role access.Role) []TransitionOption {
	return NextStatusesFor(current, access.AllowedActions(role, access.Permissions{}))
}

// NextStatusesFor is NextStatuses for an already computed capability set.
func NextStatusesFor(current Status, actions access.ActionSet) []TransitionOption {
	options := make([]TransitionOption, 0, 2)
	for _, t := range transitions {
		if t.from != current {
			continue
		}
		if t.gate != "" && !actions.Has(t.gate) {
			continue
		}
		options = append(options, TransitionOption{Status: t.to, Label: t.to.Label()})
	}
	return options
}

// CheckTransition returns a PolicyViolationError unless target is among
// NextStatuses(current, role).
func CheckTransition(current, target Status, role access.Role) error {
	if err := target.Validate(); err != nil {
		return err
	}
	allowed := slices.ContainsFunc(NextStatuses(current, role), func(o TransitionOption) bool {
		return o.Status == target
	})
	if !allowed {
		return errs.NewPolicyViolationError(
			fmt.Sprintf("%s cannot move an order from %s to %s", role, current, target))
	}
	return nil
}
