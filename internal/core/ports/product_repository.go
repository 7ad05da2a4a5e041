package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository is the product-lookup contract the place-order use case
// resolves unit prices through.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error
}
