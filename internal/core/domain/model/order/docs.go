// Package order provides the Order aggregate and its status workflow.
//
// The package includes:
//   - Order: the aggregate root placed at checkout and moved through the workflow
//   - Status: received -> preparing -> delivering -> completed, plus canceled for filtering
//   - NextStatuses: the transition policy, a pure function of (status, role)
//   - LineItem / Extra: what the customer bought, priced at checkout
//
// Key business rules:
//   - Orders start in received and only move through offered transitions
//   - preparing may go back to received; delivering may go back to preparing (admin only)
//   - Only the motoboy completes a delivery; completed is terminal
//   - Totals are recomputed from line items and the delivery fee, never trusted from clients
package order
