// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the storefront screens and read
// straight from the database, bypassing aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var ErrGetStoreSettingsQueryIsNotConstructed = errors.New(
	"GetStoreSettingsQuery must be created via NewGetStoreSettingsQuery constructor",
)

// GetStoreSettingsQuery reads the store profile, delivery tiers and working hours.
//
// Example:
//
//	handler := NewGetStoreSettingsQueryHandler(repo, cache, logger)
//	view, err := handler.Handle(ctx, NewGetStoreSettingsQuery())
type GetStoreSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoreSettingsQuery() GetStoreSettingsQuery {
	return GetStoreSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoreSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreSettingsQueryIsNotConstructed)
}

// GetStoreSettingsQueryResponse is the settings screen read model.
type GetStoreSettingsQueryResponse struct {
	StoreName     string
	PickupEnabled bool
	OpenNow       bool
	DeliveryTiers []DeliveryTierView
	WorkingHours  []DayScheduleView
	UpdatedAt     time.Time
}

// DeliveryTierView is one distance band, sorted by distance.
type DeliveryTierView struct {
	MinDistance float64
	MaxDistance float64
	Fee         float64
}

// DayScheduleView is one weekday; Opens and Closes are "HH:MM".
type DayScheduleView struct {
	Weekday time.Weekday
	Opens   string
	Closes  string
	Closed  bool
}
