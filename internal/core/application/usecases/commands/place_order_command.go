package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPlaceOrderItemIsNotConstructed = errors.New(
		"PlaceOrderItem must be created via NewPlaceOrderItem constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrProductIDIsRequired  = errors.New("product id is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
)

// PlaceOrderItem is one requested line item of a place-order command:
// a product identifier in its textual form and the number of units.
type PlaceOrderItem struct { //nolint:recvcheck //using for validation
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewPlaceOrderItem creates a validated line-item request.
// The product id must be non-empty and the quantity positive; the id is
// parsed against the catalog later, by the handler.
func NewPlaceOrderItem(productID string, quantity int) (PlaceOrderItem, error) {
	item := PlaceOrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return PlaceOrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i PlaceOrderItem) Validate() error {
	return i.guard.Validate(ErrPlaceOrderItemIsNotConstructed)
}

// ProductID returns the requested product identifier as text.
func (i PlaceOrderItem) ProductID() string {
	return i.productID
}

// Quantity returns the number of units to order.
func (i PlaceOrderItem) Quantity() int {
	return i.quantity
}

func (i *PlaceOrderItem) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	i.productID = productID
	return nil
}

func (i *PlaceOrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	i.quantity = quantity
	return nil
}

// PlaceOrderCommand represents a customer's request to place a purchase
// order with the given line items. The resulting order stays in Draft
// status; confirmation is a separate step outside this command.
//
// Example:
//
//	item, _ := NewPlaceOrderItem("0b05587d-bf4c-42bc-8ba4-6a1aef38bd4c", 2)
//	cmd, err := NewPlaceOrderCommand("c6f7ad0a-9c3e-4a7d-97c9-8d3d54e4ad3e", []PlaceOrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order for a customer.
// The customer id must be non-empty and every item must be constructed via
// NewPlaceOrderItem. An empty item list is allowed: the order is then
// persisted as an empty draft.
func NewPlaceOrderCommand(customerID string, items []PlaceOrderItem) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the customer identifier as text.
func (c PlaceOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns a copy of the requested line items.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return append([]PlaceOrderItem(nil), c.items...)
}

func (c *PlaceOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]PlaceOrderItem(nil), items...)
	return nil
}
