package settings

import (
	"cmp"
	"slices"

	"storefront/internal/core/domain/model/kernel"
)

// DeliveryTier is a distance band [MinDistance, MaxDistance) in kilometers
// with a flat delivery fee.
type DeliveryTier struct {
	ID          kernel.UUID
	MinDistance float64
	MaxDistance float64
	Fee         float64
}

// Contains reports whether distanceKm falls inside the tier. The upper bound
// is exclusive unless inclusiveMax is set (used for the last tier).
func (t DeliveryTier) Contains(distanceKm float64, inclusiveMax bool) bool {
	if distanceKm < t.MinDistance {
		return false
	}
	if inclusiveMax {
		return distanceKm <= t.MaxDistance
	}
	return distanceKm < t.MaxDistance
}

// SortTiers returns a copy ordered by MinDistance, ties broken by MaxDistance.
// The sort is stable, so fully equal bands keep their input order.
func SortTiers(tiers []DeliveryTier) []DeliveryTier {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b DeliveryTier) int {
		if c := cmp.Compare(a.MinDistance, b.MinDistance); c != 0 {
			return c
		}
		return cmp.Compare(a.MaxDistance, b.MaxDistance)
	})
	return sorted
}
