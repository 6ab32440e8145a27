package commands

import (
	"errors"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/guard"
)

var ErrUpdateWorkingHoursCommandIsNotConstructed = errors.New(
	"UpdateWorkingHoursCommand must be created via NewUpdateWorkingHoursCommand constructor",
)

// UpdateWorkingHoursCommand replaces the weekly opening schedule.
type UpdateWorkingHoursCommand struct { //nolint:recvcheck //using for validation
	actor access.Actor
	hours settings.WorkingHours

	guard guard.ConstructorGuard
}

// NewUpdateWorkingHoursCommand validates the week schedule up front.
func NewUpdateWorkingHoursCommand(actor access.Actor, days []settings.DaySchedule) (UpdateWorkingHoursCommand, error) {
	hours, err := settings.NewWorkingHours(days)
	if err = errors.Join(actor.Role.Validate(), err); err != nil {
		return UpdateWorkingHoursCommand{}, err
	}
	return UpdateWorkingHoursCommand{actor: actor, hours: hours, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateWorkingHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkingHoursCommandIsNotConstructed)
}

func (c UpdateWorkingHoursCommand) Actor() access.Actor          { return c.actor }
func (c UpdateWorkingHoursCommand) Hours() settings.WorkingHours { return c.hours }
