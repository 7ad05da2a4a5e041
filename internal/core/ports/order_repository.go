package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for Order aggregates.
// The core consumes this port; infrastructure adapters implement it.
type OrderRepository interface {
	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Save persists an order aggregate with upsert semantics: it inserts
	// a new order and updates an existing one, items included.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate and its items from storage.
	Delete(ctx context.Context, aggregate *order.Order) error
}
