package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// OrderItem is a line item within an Order. It records the product, the
// ordered quantity, and the unit price captured at the time of ordering.
// Items are never persisted on their own; they exist only inside an Order.
type OrderItem struct {
	productID kernel.ProductID
	quantity  int
	unitPrice kernel.Money
}

// NewOrderItem creates a line item with the given product, quantity, and
// unit price. Quantity must be greater than zero.
func NewOrderItem(productID kernel.ProductID, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the identifier of the product in this line item.
func (i OrderItem) ProductID() kernel.ProductID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at ordering time.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price times quantity.
func (i OrderItem) Subtotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// increaseQuantity adds units to the line item. Only the aggregate calls
// this, when the same product is added again.
func (i *OrderItem) increaseQuantity(amount int) {
	i.quantity += amount
}
