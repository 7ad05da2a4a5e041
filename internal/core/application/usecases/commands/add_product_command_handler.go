package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// AddProductCommandHandler handles catalog registration. It generates the
// product identifier, builds the Product entity, and persists it in one
// transaction.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for registering products.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-product command and returns the identifier of
// the new product in its canonical textual form.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	price, err := kernel.NewMoney(cmd.PriceAmount(), cmd.PriceCurrency())
	if err != nil {
		return "", err
	}

	aggregate, err := product.NewProduct(kernel.NewProductID(), cmd.Name(), price)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return aggregate.ID().String(), nil
}
