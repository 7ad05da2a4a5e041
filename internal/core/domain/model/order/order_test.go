package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	validCustomerID := kernel.NewCustomerID()

	t.Run("should create draft order for customer", func(t *testing.T) {
		o, err := order.NewOrder(validCustomerID)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.CustomerID().IsEqual(validCustomerID))
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.Items())
		require.NoError(t, o.ID().Validate())
	})

	t.Run("should record order created event", func(t *testing.T) {
		o, err := order.NewOrder(validCustomerID)

		require.NoError(t, err)
		events := o.DomainEvents()
		require.Len(t, events, 1)

		created, ok := events[0].(order.OrderCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "order.created", created.EventName())
		assert.True(t, created.OrderID().IsEqual(o.ID()))
		assert.True(t, created.CustomerID().IsEqual(validCustomerID))
		assert.False(t, created.OccurredAt().IsZero())
	})

	t.Run("should generate unique order ids", func(t *testing.T) {
		o1, _ := order.NewOrder(validCustomerID)
		o2, _ := order.NewOrder(validCustomerID)

		assert.False(t, o1.ID().IsEqual(o2.ID()))
		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should fail with zero customer id", func(t *testing.T) {
		var invalidID kernel.CustomerID

		o, err := order.NewOrder(invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	orderID := kernel.NewOrderID()
	customerID := kernel.NewCustomerID()

	t.Run("should restore order without recording events", func(t *testing.T) {
		item, err := order.NewOrderItem(kernel.NewProductID(), 2, usd(t, 2999))
		require.NoError(t, err)

		o, err := order.RestoreOrder(orderID, customerID, []order.OrderItem{item}, order.Confirmed)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should restore order without items", func(t *testing.T) {
		o, err := order.RestoreOrder(orderID, customerID, nil, order.Draft)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(orderID, customerID, nil, order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidOrderID kernel.OrderID
		var invalidCustomerID kernel.CustomerID

		o, err := order.RestoreOrder(invalidOrderID, invalidCustomerID, nil, order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		require.NoError(t, o.Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should add item to draft order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		productID := kernel.NewProductID()
		price := usd(t, 2999)

		err := o.AddItem(productID, 2, price)

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].ProductID().IsEqual(productID))
		assert.Equal(t, 2, items[0].Quantity())
		assert.True(t, items[0].UnitPrice().IsEqual(price))
	})

	t.Run("should merge quantities when the same product is added again", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		productID := kernel.NewProductID()
		price := usd(t, 2999)

		require.NoError(t, o.AddItem(productID, 2, price))
		require.NoError(t, o.AddItem(productID, 3, price))

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity())
	})

	t.Run("should keep insertion order for distinct products", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		first := kernel.NewProductID()
		second := kernel.NewProductID()

		require.NoError(t, o.AddItem(first, 1, usd(t, 100)))
		require.NoError(t, o.AddItem(second, 1, usd(t, 200)))

		items := o.Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].ProductID().IsEqual(first))
		assert.True(t, items[1].ProductID().IsEqual(second))
	})

	t.Run("should record no event when adding items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		o.ClearEvents()

		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 100)))

		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		err := o.AddItem(kernel.NewProductID(), 0, usd(t, 100))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQuantityIsInvalid)
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		err := o.AddItem(kernel.NewProductID(), -1, usd(t, 100))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrQuantityIsInvalid)
	})

	t.Run("should fail with zero product id", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		var invalidID kernel.ProductID

		err := o.AddItem(invalidID, 1, usd(t, 100))

		require.Error(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		var invalidPrice kernel.Money

		err := o.AddItem(kernel.NewProductID(), 1, invalidPrice)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should fail for cancelled order with dedicated error", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewOrderID(), kernel.NewCustomerID(), nil, order.Cancelled)
		require.NoError(t, err)

		err = o.AddItem(kernel.NewProductID(), 1, usd(t, 100))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCannotModifyCancelled)
	})

	t.Run("should fail for confirmed order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewOrderID(), kernel.NewCustomerID(), nil, order.Confirmed)
		require.NoError(t, err)

		err = o.AddItem(kernel.NewProductID(), 1, usd(t, 100))

		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrCannotModifyCancelled)
	})

	t.Run("should fail for shipped order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewOrderID(), kernel.NewCustomerID(), nil, order.Shipped)
		require.NoError(t, err)

		err = o.AddItem(kernel.NewProductID(), 1, usd(t, 100))

		require.Error(t, err)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should total zero USD for order without items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		total, err := o.Total()

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("should sum quantity times unit price across items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		require.NoError(t, o.AddItem(kernel.NewProductID(), 5, usd(t, 2999)))

		total, err := o.Total()

		require.NoError(t, err)
		assert.Equal(t, int64(14995), total.Amount())
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("should reflect merged quantities in the total", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		productID := kernel.NewProductID()

		require.NoError(t, o.AddItem(productID, 2, usd(t, 2999)))
		require.NoError(t, o.AddItem(productID, 3, usd(t, 2999)))

		total, err := o.Total()

		require.NoError(t, err)
		assert.Equal(t, int64(14995), total.Amount())
	})

	t.Run("should sum items of distinct products", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		require.NoError(t, o.AddItem(kernel.NewProductID(), 2, usd(t, 1000)))
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 500)))

		total, err := o.Total()

		require.NoError(t, err)
		assert.Equal(t, int64(2500), total.Amount())
	})

	t.Run("should fail on currency mismatch between items", func(t *testing.T) {
		eur, err := kernel.NewMoney(100, "EUR")
		require.NoError(t, err)

		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 100)))
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, eur))

		_, err = o.Total()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm draft order with items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 5, usd(t, 2999)))

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should record confirmed event after created event", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 5, usd(t, 2999)))

		require.NoError(t, o.Confirm())

		events := o.DomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "order.created", events[0].EventName())

		confirmed, ok := events[1].(order.OrderConfirmedEvent)
		require.True(t, ok)
		assert.Equal(t, "order.confirmed", confirmed.EventName())
		assert.True(t, confirmed.OrderID().IsEqual(o.ID()))
		assert.Equal(t, int64(14995), confirmed.Total().Amount())
		assert.Equal(t, "USD", confirmed.Total().Currency())
	})

	t.Run("should fail for order without items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		err := o.Confirm()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsEmpty)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("should fail on double confirm", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 100)))
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Len(t, o.DomainEvents(), 2)
	})

	t.Run("should fail for cancelled order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewOrderID(), kernel.NewCustomerID(), nil, order.Cancelled)
		require.NoError(t, err)

		err = o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_DomainEvents(t *testing.T) {
	t.Run("should return a copy of the event buffer", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		events := o.DomainEvents()
		events[0] = nil

		require.Len(t, o.DomainEvents(), 1)
		assert.NotNil(t, o.DomainEvents()[0])
	})

	t.Run("should drain events on clear", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		o.ClearEvents()

		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should be idempotent on repeated clear", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())

		o.ClearEvents()
		o.ClearEvents()

		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should accumulate events again after clear", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 100)))
		o.ClearEvents()

		require.NoError(t, o.Confirm())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "order.confirmed", events[0].EventName())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a copy of the items", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewCustomerID())
		require.NoError(t, o.AddItem(kernel.NewProductID(), 1, usd(t, 100)))

		items := o.Items()
		items[0] = order.OrderItem{}

		fresh := o.Items()
		require.Len(t, fresh, 1)
		assert.Equal(t, 1, fresh[0].Quantity())
	})
}

func TestNewOrderItem(t *testing.T) {
	t.Run("should create item with valid values", func(t *testing.T) {
		productID := kernel.NewProductID()
		price := usd(t, 2999)

		item, err := order.NewOrderItem(productID, 5, price)

		require.NoError(t, err)
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 5, item.Quantity())
		assert.True(t, item.UnitPrice().IsEqual(price))
	})

	t.Run("should compute subtotal as price times quantity", func(t *testing.T) {
		item, err := order.NewOrderItem(kernel.NewProductID(), 5, usd(t, 2999))
		require.NoError(t, err)

		subtotal, err := item.Subtotal()

		require.NoError(t, err)
		assert.Equal(t, int64(14995), subtotal.Amount())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewProductID(), 0, usd(t, 100))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with zero product id", func(t *testing.T) {
		var invalidID kernel.ProductID

		_, err := order.NewOrderItem(invalidID, 1, usd(t, 100))

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var invalidPrice kernel.Money

		_, err := order.NewOrderItem(kernel.NewProductID(), 1, invalidPrice)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
