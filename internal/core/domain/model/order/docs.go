// Package order provides the Order aggregate and its supporting domain
// types for the ordering system.
//
// The package includes:
//   - Order: the aggregate root owning line items, lifecycle status, and
//     the buffer of recorded domain events
//   - OrderItem: a line item with product, quantity, and unit price
//   - Status: a state machine enforcing valid lifecycle transitions
//   - OrderEvent and its implementations: immutable facts emitted on
//     creation and confirmation
//
// Key business rules:
//   - orders start as Draft and must be created through NewOrder
//   - a product appears at most once per order; re-adding merges quantity
//   - cancelled orders are never modified
//   - only non-empty Draft orders can be confirmed
//
// The package follows Domain-Driven Design principles: rich behavior,
// encapsulated state, and validation that keeps every instance consistent.
package order
