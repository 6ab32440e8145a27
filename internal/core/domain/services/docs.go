// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderPricer: turns a checkout cart into an Order, pricing lines from the
//     catalog and the delivery fee from the store's delivery tiers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
