package settings_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(opens, closes string) []settings.DaySchedule {
	days := make([]settings.DaySchedule, 7)
	for i := range days {
		days[i] = settings.DaySchedule{Weekday: time.Weekday(i), Opens: opens, Closes: closes}
	}
	return days
}

func TestNewWorkingHours(t *testing.T) {
	t.Run("should accept a full week", func(t *testing.T) {
		days := week("11:00", "23:00")
		days[time.Monday] = settings.DaySchedule{Weekday: time.Monday, Closed: true}

		wh, err := settings.NewWorkingHours(days)

		require.NoError(t, err)
		assert.Len(t, wh.Days(), 7)
		assert.True(t, wh.Days()[time.Monday].Closed)
	})

	t.Run("should reject missing weekday", func(t *testing.T) {
		_, err := settings.NewWorkingHours(week("11:00", "23:00")[:6])

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "Saturday")
	})

	t.Run("should reject duplicated weekday", func(t *testing.T) {
		days := append(week("11:00", "23:00"), settings.DaySchedule{Weekday: time.Friday, Opens: "10:00", Closes: "12:00"})

		_, err := settings.NewWorkingHours(days)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Friday appears more than once")
	})

	t.Run("should reject closing before opening", func(t *testing.T) {
		days := week("11:00", "23:00")
		days[time.Tuesday].Closes = "10:00"

		_, err := settings.NewWorkingHours(days)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Tuesday")
	})

	t.Run("should reject malformed clock", func(t *testing.T) {
		days := week("11:00", "23:00")
		days[time.Sunday].Opens = "11h"

		_, err := settings.NewWorkingHours(days)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject weekday out of range", func(t *testing.T) {
		days := append(week("11:00", "23:00"), settings.DaySchedule{Weekday: 9, Opens: "10:00", Closes: "12:00"})

		_, err := settings.NewWorkingHours(days)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWorkingHours_IsOpenAt(t *testing.T) {
	days := week("11:00", "23:00")
	days[time.Monday] = settings.DaySchedule{Weekday: time.Monday, Closed: true}
	wh, err := settings.NewWorkingHours(days)
	require.NoError(t, err)

	// 2026-10-13 is a Tuesday, 2026-10-12 a Monday.
	testCases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{"before opening", time.Date(2026, 10, 13, 10, 59, 0, 0, time.UTC), false},
		{"at opening", time.Date(2026, 10, 13, 11, 0, 0, 0, time.UTC), true},
		{"mid day", time.Date(2026, 10, 13, 15, 30, 0, 0, time.UTC), true},
		{"at closing", time.Date(2026, 10, 13, 23, 0, 0, 0, time.UTC), false},
		{"closed day", time.Date(2026, 10, 12, 15, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, wh.IsOpenAt(tc.at))
		})
	}
}
