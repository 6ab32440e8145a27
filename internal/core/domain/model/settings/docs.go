// Package settings holds the store configuration edited in the admin panel:
// distance-based delivery fee tiers, weekly working hours and pickup.
//
// Key business rules:
//   - Tiers sorted by minimum distance start at 0 km
//   - Adjacent tiers touch exactly (no gap, no overlap)
//   - Every tier's minimum distance is below its maximum
//   - Each weekday is either closed or opens before it closes
//
// StoreSettings is a single aggregate per store; it is created explicitly at
// startup with defaults when the database holds none.
package settings
