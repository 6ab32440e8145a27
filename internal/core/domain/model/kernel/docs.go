// Package kernel holds the value objects shared by every storefront aggregate.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Address: delivery address, or the pickup sentinel for in-store pickup
//   - Amount helpers: currency rounding shared by pricing and delivery fees
//
// All values are immutable and must be created through their constructors;
// zero values fail validation.
package kernel
