package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrStoreSettingsIsNotConstructed is returned for StoreSettings not built by a constructor.
	ErrStoreSettingsIsNotConstructed = errors.New("StoreSettings must be created via NewStoreSettings or RestoreStoreSettings")

	// ErrOutOfDeliveryArea is returned when a distance is beyond the last tier.
	ErrOutOfDeliveryArea = errors.New("address is outside the delivery area")
)

const (
	defaultStoreName = "Minha Loja"
	defaultMaxKm     = 5
	defaultFee       = 5.0
	defaultOpens     = "11:00"
	defaultCloses    = "23:00"
)

// StoreSettings is the store-wide configuration aggregate.
type StoreSettings struct {
	id            kernel.UUID
	storeName     string
	tiers         []DeliveryTier
	hours         WorkingHours
	pickupEnabled bool
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewStoreSettings validates and builds store settings. Tiers are stored sorted.
func NewStoreSettings(
	id kernel.UUID,
	storeName string,
	tiers []DeliveryTier,
	hours WorkingHours,
	pickupEnabled bool,
) (*StoreSettings, error) {
	s := &StoreSettings{
		hours:         hours,
		pickupEnabled: pickupEnabled,
		updatedAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStoreName(storeName),
		s.setTiers(tiers),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStoreSettings rebuilds settings loaded from storage, keeping updatedAt.
func RestoreStoreSettings(
	id kernel.UUID,
	storeName string,
	tiers []DeliveryTier,
	hours WorkingHours,
	pickupEnabled bool,
	updatedAt time.Time,
) (*StoreSettings, error) {
	s, err := NewStoreSettings(id, storeName, tiers, hours, pickupEnabled)
	if err != nil {
		return nil, err
	}
	s.updatedAt = updatedAt
	return s, nil
}

// DefaultStoreSettings is what a fresh store starts with: one 0-5 km tier for
// 5.00, open 11:00-23:00 every day, pickup enabled.
func DefaultStoreSettings() (*StoreSettings, error) {
	hours, err := EveryDay(defaultOpens, defaultCloses)
	if err != nil {
		return nil, err
	}
	tiers := []DeliveryTier{{ID: kernel.NewUUID(), MinDistance: 0, MaxDistance: defaultMaxKm, Fee: defaultFee}}
	return NewStoreSettings(kernel.NewUUID(), defaultStoreName, tiers, hours, true)
}

// Validate ensures the settings were built by a constructor.
func (s *StoreSettings) Validate() error {
	if s == nil {
		return ErrStoreSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrStoreSettingsIsNotConstructed)
}

func (s *StoreSettings) ID() kernel.UUID            { return s.id }
func (s *StoreSettings) StoreName() string          { return s.storeName }
func (s *StoreSettings) WorkingHours() WorkingHours { return s.hours }
func (s *StoreSettings) PickupEnabled() bool        { return s.pickupEnabled }
func (s *StoreSettings) UpdatedAt() time.Time       { return s.updatedAt }

// DeliveryTiers returns a copy of the tiers, sorted by distance.
func (s *StoreSettings) DeliveryTiers() []DeliveryTier {
	out := make([]DeliveryTier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// ReplaceDeliveryTiers swaps the whole tier collection after validating it.
func (s *StoreSettings) ReplaceDeliveryTiers(tiers []DeliveryTier) error {
	if err := s.setTiers(tiers); err != nil {
		return err
	}
	s.touch()
	return nil
}

// UpdateWorkingHours replaces the weekly schedule.
func (s *StoreSettings) UpdateWorkingHours(hours WorkingHours) {
	s.hours = hours
	s.touch()
}

// UpdateStoreProfile changes the store name and whether pickup is offered.
func (s *StoreSettings) UpdateStoreProfile(storeName string, pickupEnabled bool) error {
	if err := s.setStoreName(storeName); err != nil {
		return err
	}
	s.pickupEnabled = pickupEnabled
	s.touch()
	return nil
}

// IsOpenAt reports whether orders are accepted at t.
func (s *StoreSettings) IsOpenAt(t time.Time) bool {
	return s.hours.IsOpenAt(t)
}

// QuoteDeliveryFee returns the fee of the tier covering distanceKm. The last
// tier includes its maximum distance; anything beyond is ErrOutOfDeliveryArea.
func (s *StoreSettings) QuoteDeliveryFee(distanceKm float64) (float64, error) {
	if distanceKm < 0 {
		return 0, errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, s.tiers[len(s.tiers)-1].MaxDistance)
	}
	last := len(s.tiers) - 1
	for i, t := range s.tiers {
		if t.Contains(distanceKm, i == last) {
			return t.Fee, nil
		}
	}
	return 0, fmt.Errorf("%w: %.2f km", ErrOutOfDeliveryArea, distanceKm)
}

func (s *StoreSettings) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StoreSettings) setStoreName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("store name")
	}
	s.storeName = name
	return nil
}

func (s *StoreSettings) setTiers(tiers []DeliveryTier) error {
	if err := ValidateDeliveryTiers(tiers); err != nil {
		return err
	}
	sorted := SortTiers(tiers)
	for i := range sorted {
		if sorted[i].ID.Validate() != nil {
			sorted[i].ID = kernel.NewUUID()
		}
	}
	s.tiers = sorted
	return nil
}

func (s *StoreSettings) touch() {
	s.updatedAt = time.Now().UTC()
}
