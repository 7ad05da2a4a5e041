package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCannotModifyCancelled is returned when a mutation is attempted on
	// a cancelled order.
	ErrCannotModifyCancelled = errors.New("cannot modify cancelled order")

	// ErrQuantityIsInvalid is returned when AddItem is called with a
	// quantity of zero or less.
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")

	// ErrOrderIsEmpty is returned when Confirm is called on an order
	// without line items.
	ErrOrderIsEmpty = errors.New("cannot confirm order without items")
)

// defaultCurrency is the currency of the total of an order without items.
const defaultCurrency = "USD"

// Order represents a customer's purchase order. It is the aggregate root
// and the consistency boundary for all order mutations: line items, status
// transitions, and the domain events recorded along the way.
//
// Order maintains these invariants:
//   - items never contain two entries for the same product; re-adding a
//     product merges quantities instead
//   - cancelled orders are never modified
//   - Confirmed is reachable only from Draft and only with items present
//   - the event buffer grows only through aggregate methods; external code
//     may read and clear it but never append
//
// Every operation either fully applies or leaves the aggregate unchanged.
type Order struct {
	id         kernel.OrderID
	customerID kernel.CustomerID
	items      []OrderItem
	status     Status
	events     []OrderEvent

	isConstructed bool
}

// NewOrder creates a new Order in Draft status for the given customer and
// records an OrderCreatedEvent. This is the only way to bring a new order
// into existence.
func NewOrder(customerID kernel.CustomerID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		id:            kernel.NewOrderID(),
		customerID:    customerID,
		status:        Draft,
		isConstructed: true,
	}
	order.events = append(order.events, NewOrderCreatedEvent(order.id, customerID))

	return order, nil
}

// RestoreOrder reconstitutes an Order from persistence. No events are
// recorded: restoration is not a domain occurrence.
func RestoreOrder(id kernel.OrderID, customerID kernel.CustomerID, items []OrderItem, status Status) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]OrderItem(nil), items...),
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when receiving orders from persistence to prevent
// bypassing validation by direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// AddItem adds a product to the order or merges the quantity into the
// existing line item for the same product. The merge records no event.
//
// Business rules enforced:
//   - cancelled orders yield ErrCannotModifyCancelled
//   - Confirmed and Shipped orders are not modifiable either; only Draft
//     orders accept items
//   - quantity must be greater than zero (ErrQuantityIsInvalid)
func (o *Order) AddItem(productID kernel.ProductID, quantity int, unitPrice kernel.Money) error {
	if err := o.status.ValidateAddItem(); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	if err := errors.Join(productID.Validate(), unitPrice.Validate()); err != nil {
		return err
	}

	for i := range o.items {
		if o.items[i].ProductID().IsEqual(productID) {
			o.items[i].increaseQuantity(quantity)
			return nil
		}
	}

	item, err := NewOrderItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Confirm transitions the order from Draft to Confirmed and records an
// OrderConfirmedEvent carrying the total computed at this moment.
//
// Business rules enforced:
//   - only Draft orders can be confirmed
//   - the order must contain at least one line item (ErrOrderIsEmpty)
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return ErrOrderIsEmpty
	}

	total, err := o.Total()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.events = append(o.events, NewOrderConfirmedEvent(o.id, total))
	return nil
}

// Total folds all line-item subtotals into a single Money value. An order
// without items totals zero USD; otherwise the fold starts from a zero of
// the first item's currency. A currency mismatch between items surfaces as
// an error rather than being dropped from the sum.
func (o *Order) Total() (kernel.Money, error) {
	if len(o.items) == 0 {
		return kernel.Zero(defaultCurrency), nil
	}

	total := kernel.Zero(o.items[0].UnitPrice().Currency())
	for _, item := range o.items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// DomainEvents returns a copy of the events recorded since creation or the
// last ClearEvents call, in the order they happened.
func (o *Order) DomainEvents() []OrderEvent {
	return append([]OrderEvent(nil), o.events...)
}

// ClearEvents drains the event buffer. The publisher calls this exactly
// once after the aggregate has been successfully persisted; clearing before
// persistence would lose events.
func (o *Order) ClearEvents() {
	o.events = nil
}
