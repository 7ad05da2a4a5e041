package http

// Request and response bodies of the public API. Kept as plain structs so
// the wire format is visible in one place and decoupled from domain types.

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID string               `json:"customer_id"`
	Items      []PlaceOrderItemBody `json:"items"`
}

// PlaceOrderItemBody is one requested line item within PlaceOrderRequest.
type PlaceOrderItemBody struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderResponse returns the identifier of the newly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// AddProductRequest is the body of POST /api/v1/products. The price is
// given as an amount in minor currency units plus an ISO currency code.
type AddProductRequest struct {
	Name          string `json:"name"`
	PriceAmount   int64  `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
}

// AddProductResponse returns the identifier of the newly registered product.
type AddProductResponse struct {
	ProductID string `json:"product_id"`
}

// PendingOrderResponse is one element of GET /api/v1/orders/pending.
type PendingOrderResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
