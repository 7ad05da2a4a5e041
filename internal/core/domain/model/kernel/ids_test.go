package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderID(t *testing.T) {
	t.Run("should create new order id", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("should parse order id from string", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail for malformed string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
		b, _ := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
		c := kernel.NewOrderID()

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var id kernel.OrderID

		require.Error(t, id.Validate())
	})
}

func TestCustomerID(t *testing.T) {
	t.Run("should create new customer id", func(t *testing.T) {
		id := kernel.NewCustomerID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("should parse customer id from string", func(t *testing.T) {
		id, err := kernel.CustomerIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail for malformed string", func(t *testing.T) {
		_, err := kernel.CustomerIDFromString("")

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var id kernel.CustomerID

		require.Error(t, id.Validate())
	})
}

func TestProductID(t *testing.T) {
	t.Run("should create new product id", func(t *testing.T) {
		id := kernel.NewProductID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("should parse product id from string", func(t *testing.T) {
		id, err := kernel.ProductIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail for malformed string", func(t *testing.T) {
		_, err := kernel.ProductIDFromString("zzz")

		require.Error(t, err)
	})

	t.Run("should expose the underlying uuid", func(t *testing.T) {
		id := kernel.NewProductID()

		assert.Equal(t, id.String(), id.UUID().String())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var id kernel.ProductID

		require.Error(t, id.Validate())
	})
}
