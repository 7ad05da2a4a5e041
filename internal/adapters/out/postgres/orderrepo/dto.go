// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status     int            `gorm:"type:int;not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Links to the order via foreign key; position preserves insertion order so
// aggregates reconstruct with their items in the order they were added.
type OrderItemDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity      int       `gorm:"type:int;not null"`
	PriceAmount   int64     `gorm:"type:bigint;not null"`
	PriceCurrency string    `gorm:"type:varchar(3);not null"`
	Position      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Flattens line items into child rows carrying their position.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID().Bytes()

	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for i, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:       orderID,
			ProductID:     item.ProductID().UUID().Bytes(),
			Quantity:      item.Quantity(),
			PriceAmount:   item.UnitPrice().Amount(),
			PriceCurrency: item.UnitPrice().Currency(),
			Position:      i,
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().UUID().Bytes(),
		Status:     int(aggregate.Status()),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.CustomerIDFromString(dto.CustomerID.String())
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, items, order.Status(dto.Status))
}

// itemToDomain converts a line item DTO to its domain value.
func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	productID, err := kernel.ProductIDFromString(dto.ProductID.String())
	if err != nil {
		return order.OrderItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(productID, dto.Quantity, unitPrice)
}
