package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the public HTTP API of the ordering service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler
	addProductHandler commands.AddProductCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		addProductHandler:       addProductHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.POST("/products", s.AddProduct)
	api.GET("/orders/pending", s.GetPendingOrders)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.PlaceOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		commandItem, err := commands.NewPlaceOrderItem(item.ProductID, item.Quantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		items = append(items, commandItem)
	}

	cmd, err := commands.NewPlaceOrderCommand(request.CustomerID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID})
}

// AddProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) AddProduct(ctx echo.Context) error {
	var request AddProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddProductCommand(request.Name, request.PriceAmount, request.PriceCurrency)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	productID, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to add product")
	}

	return ctx.JSON(http.StatusCreated, AddProductResponse{ProductID: productID})
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves all orders
// still awaiting confirmation.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, pending := range orders {
		response[i] = PendingOrderResponse{
			ID:         pending.ID.String(),
			CustomerID: pending.CustomerID.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps application errors to HTTP status codes. Unknown products
// yield 404, malformed values 400, violated business rules 422, and anything
// else is reported as an internal error.
func writeError(ctx echo.Context, err error, fallback string) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if errors.Is(err, order.ErrCannotModifyCancelled) ||
		errors.Is(err, order.ErrQuantityIsInvalid) ||
		errors.Is(err, order.ErrOrderIsEmpty) ||
		errors.Is(err, kernel.ErrCurrencyMismatch) ||
		errors.Is(err, kernel.ErrAmountOverflow) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}
