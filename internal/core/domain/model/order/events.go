package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// Event names used for routing and serialization of domain events.
const (
	OrderCreatedEventName   = "order.created"
	OrderConfirmedEventName = "order.confirmed"
)

// OrderEvent is a fact recorded by the Order aggregate. Events are
// immutable once created; the aggregate appends them in the order they
// happened and an external publisher drains them after persistence.
type OrderEvent interface {
	// EventName returns the stable name of the event kind.
	EventName() string

	// OccurredAt returns when the event was recorded.
	OccurredAt() time.Time
}

// OrderCreatedEvent is emitted exactly once, when an order is created.
type OrderCreatedEvent struct {
	orderID    kernel.OrderID
	customerID kernel.CustomerID
	occurredAt time.Time
}

// NewOrderCreatedEvent records the creation of an order for a customer.
func NewOrderCreatedEvent(orderID kernel.OrderID, customerID kernel.CustomerID) OrderCreatedEvent {
	return OrderCreatedEvent{
		orderID:    orderID,
		customerID: customerID,
		occurredAt: time.Now().UTC(),
	}
}

// OrderID returns the identifier of the created order.
func (e OrderCreatedEvent) OrderID() kernel.OrderID {
	return e.orderID
}

// CustomerID returns the identifier of the customer who placed the order.
func (e OrderCreatedEvent) CustomerID() kernel.CustomerID {
	return e.customerID
}

// EventName returns OrderCreatedEventName.
func (e OrderCreatedEvent) EventName() string {
	return OrderCreatedEventName
}

// OccurredAt returns when the event was recorded.
func (e OrderCreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderConfirmedEvent is emitted when an order transitions to Confirmed.
// It carries the order total computed at the moment of confirmation.
type OrderConfirmedEvent struct {
	orderID    kernel.OrderID
	total      kernel.Money
	occurredAt time.Time
}

// NewOrderConfirmedEvent records the confirmation of an order with its total.
func NewOrderConfirmedEvent(orderID kernel.OrderID, total kernel.Money) OrderConfirmedEvent {
	return OrderConfirmedEvent{
		orderID:    orderID,
		total:      total,
		occurredAt: time.Now().UTC(),
	}
}

// OrderID returns the identifier of the confirmed order.
func (e OrderConfirmedEvent) OrderID() kernel.OrderID {
	return e.orderID
}

// Total returns the order total at confirmation time.
func (e OrderConfirmedEvent) Total() kernel.Money {
	return e.total
}

// EventName returns OrderConfirmedEventName.
func (e OrderConfirmedEvent) EventName() string {
	return OrderConfirmedEventName
}

// OccurredAt returns when the event was recorded.
func (e OrderConfirmedEvent) OccurredAt() time.Time {
	return e.occurredAt
}
