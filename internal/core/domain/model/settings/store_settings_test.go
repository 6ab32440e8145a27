package settings_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettings(t *testing.T, tiers ...settings.DeliveryTier) *settings.StoreSettings {
	t.Helper()
	hours, err := settings.EveryDay("11:00", "23:00")
	require.NoError(t, err)
	s, err := settings.NewStoreSettings(kernel.NewUUID(), "Pizzaria", tiers, hours, true)
	require.NoError(t, err)
	return s
}

func TestDefaultStoreSettings(t *testing.T) {
	s, err := settings.DefaultStoreSettings()

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Len(t, s.DeliveryTiers(), 1)
	assert.InDelta(t, 0.0, s.DeliveryTiers()[0].MinDistance, 0)
	assert.InDelta(t, 5.0, s.DeliveryTiers()[0].MaxDistance, 0)
	assert.True(t, s.PickupEnabled())
	assert.True(t, s.IsOpenAt(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)))
}

func TestNewStoreSettings(t *testing.T) {
	t.Run("should sort tiers and assign missing ids", func(t *testing.T) {
		s := newSettings(t, tier(3, 6, 8), tier(0, 3, 5))

		got := s.DeliveryTiers()
		assert.InDelta(t, 0.0, got[0].MinDistance, 0)
		assert.InDelta(t, 3.0, got[1].MinDistance, 0)
		require.NoError(t, got[0].ID.Validate())
		require.NoError(t, got[1].ID.Validate())
	})

	t.Run("should reject invalid tiers and empty name together", func(t *testing.T) {
		hours, _ := settings.EveryDay("11:00", "23:00")

		_, err := settings.NewStoreSettings(kernel.NewUUID(), " ", []settings.DeliveryTier{tier(1, 3, 5)}, hours, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s settings.StoreSettings

		require.ErrorIs(t, s.Validate(), settings.ErrStoreSettingsIsNotConstructed)
	})
}

func TestStoreSettings_ReplaceDeliveryTiers(t *testing.T) {
	t.Run("should keep previous tiers on failure", func(t *testing.T) {
		s := newSettings(t, tier(0, 3, 5))

		err := s.ReplaceDeliveryTiers([]settings.DeliveryTier{tier(0, 3, 5), tier(4, 6, 8)})

		require.Error(t, err)
		assert.Len(t, s.DeliveryTiers(), 1)
	})

	t.Run("should replace and touch on success", func(t *testing.T) {
		s := newSettings(t, tier(0, 3, 5))
		before := s.UpdatedAt()

		err := s.ReplaceDeliveryTiers([]settings.DeliveryTier{tier(0, 2, 4), tier(2, 8, 9)})

		require.NoError(t, err)
		assert.Len(t, s.DeliveryTiers(), 2)
		assert.False(t, s.UpdatedAt().Before(before))
	})
}

func TestStoreSettings_QuoteDeliveryFee(t *testing.T) {
	s := newSettings(t, tier(0, 3, 5), tier(3, 6, 8), tier(6, 10, 12))

	testCases := []struct {
		distance float64
		fee      float64
	}{
		{0, 5},
		{2.99, 5},
		{3, 8},
		{6, 12},
		{10, 12},
	}
	for _, tc := range testCases {
		fee, err := s.QuoteDeliveryFee(tc.distance)
		require.NoError(t, err)
		assert.InDelta(t, tc.fee, fee, 0, "distance %.2f", tc.distance)
	}

	_, err := s.QuoteDeliveryFee(10.01)
	require.ErrorIs(t, err, settings.ErrOutOfDeliveryArea)

	_, err = s.QuoteDeliveryFee(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestStoreSettings_UpdateStoreProfile(t *testing.T) {
	s := newSettings(t, tier(0, 3, 5))

	require.Error(t, s.UpdateStoreProfile("", false))
	assert.True(t, s.PickupEnabled())

	require.NoError(t, s.UpdateStoreProfile("Burger Place", false))
	assert.Equal(t, "Burger Place", s.StoreName())
	assert.False(t, s.PickupEnabled())
}
