package settings

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/pkg/errs"
)

const clockLayout = "15:04"

// DaySchedule is the opening window of one weekday, in store local time.
// Opens and Closes are "HH:MM"; a Closed day ignores both.
type DaySchedule struct {
	Weekday time.Weekday
	Opens   string
	Closes  string
	Closed  bool
}

// WorkingHours holds exactly one schedule per weekday, Sunday first.
type WorkingHours struct {
	days [7]DaySchedule
}

// NewWorkingHours validates a full week. Every weekday must appear once, and
// open days must open strictly before they close (no overnight windows).
func NewWorkingHours(days []DaySchedule) (WorkingHours, error) {
	var wh WorkingHours
	seen := make([]bool, 7)
	var problems []error

	for _, d := range days {
		if d.Weekday < time.Sunday || d.Weekday > time.Saturday {
			problems = append(problems, errs.NewValueIsOutOfRangeError("weekday", int(d.Weekday), 0, 6))
			continue
		}
		if seen[d.Weekday] {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"working hours", fmt.Errorf("%s appears more than once", d.Weekday)))
			continue
		}
		seen[d.Weekday] = true
		if err := d.validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		wh.days[d.Weekday] = d
	}

	if missing := slices.Index(seen, false); missing >= 0 {
		problems = append(problems, errs.NewValueIsRequiredError(
			fmt.Sprintf("working hours for %s", time.Weekday(missing))))
	}

	if err := errors.Join(problems...); err != nil {
		return WorkingHours{}, err
	}
	return wh, nil
}

// EveryDay returns the same window for the whole week.
func EveryDay(opens, closes string) (WorkingHours, error) {
	days := make([]DaySchedule, 7)
	for i := range days {
		days[i] = DaySchedule{Weekday: time.Weekday(i), Opens: opens, Closes: closes}
	}
	return NewWorkingHours(days)
}

// Days returns the schedules Sunday through Saturday.
func (w WorkingHours) Days() []DaySchedule {
	return slices.Clone(w.days[:])
}

// IsOpenAt reports whether the store takes orders at t. t is interpreted in
// its own location; callers convert to store time first.
func (w WorkingHours) IsOpenAt(t time.Time) bool {
	d := w.days[t.Weekday()]
	if d.Closed {
		return false
	}
	opens, _ := time.Parse(clockLayout, d.Opens)
	closes, _ := time.Parse(clockLayout, d.Closes)
	now := t.Hour()*60 + t.Minute()
	return now >= minutesOf(opens) && now < minutesOf(closes)
}

func (d DaySchedule) validate() error {
	if d.Closed {
		return nil
	}
	opens, err := time.Parse(clockLayout, d.Opens)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s opening time", d.Weekday), err)
	}
	closes, err := time.Parse(clockLayout, d.Closes)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s closing time", d.Weekday), err)
	}
	if minutesOf(opens) >= minutesOf(closes) {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("%s working hours", d.Weekday),
			fmt.Errorf("opens at %s but closes at %s", d.Opens, d.Closes))
	}
	return nil
}

func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
