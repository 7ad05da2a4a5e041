package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// PlaceOrderCommandHandler orchestrates the place-order use case:
// validate identifiers, resolve unit prices through the product catalog,
// build the order aggregate, and persist it together with its domain
// events in one transaction.
//
// The handler adds no business rules of its own; every invariant lives in
// the aggregate and the value objects.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for placing orders.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the place-order command and returns the identifier of
// the new order in its canonical textual form. The order remains in Draft
// status.
//
// Error kinds surfaced to the caller:
//   - invalid customer or product id text (errs.ValueIsInvalidError)
//   - unknown product (errs.ObjectNotFoundError)
//   - domain-rule violations propagated from the aggregate
//   - persistence failures from the unit of work
//
// A persistence failure after in-memory mutation leaves no partial state
// behind: the transaction is rolled back and the aggregate is discarded
// with it.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	customerID, err := kernel.CustomerIDFromString(cmd.CustomerID())
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	aggregate, err := order.NewOrder(customerID)
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

	productRepo := uow.ProductRepository()
	for _, item := range cmd.Items() {
		productID, idErr := kernel.ProductIDFromString(item.ProductID())
		if idErr != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("productId", idErr)
		}

		catalogProduct, lookupErr := productRepo.Get(ctx, productID)
		if lookupErr != nil {
			return "", lookupErr
		}

		if addErr := aggregate.AddItem(productID, item.Quantity(), catalogProduct.Price()); addErr != nil {
			return "", addErr
		}
	}

	if err = uow.OrderRepository().Save(ctx, aggregate); err != nil {
		return "", err
	}

	messages, err := outboxMessagesFromEvents(aggregate.DomainEvents())
	if err != nil {
		return "", err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, messages); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	// Events are staged in the outbox now; drop them from the aggregate so
	// they cannot be enqueued twice.
	aggregate.ClearEvents()

	return aggregate.ID().String(), nil
}
