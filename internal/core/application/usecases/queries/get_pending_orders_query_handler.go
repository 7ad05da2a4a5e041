package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads pending orders straight from the
// database, skipping aggregate reconstruction for speed.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders in Draft status,
// sorted by order id for stable output.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.Draft).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID

		if err = rows.Scan(&id, &customerID); err != nil {
			return nil, err
		}

		response, convErr := pendingOrderResponse(id, customerID)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func pendingOrderResponse(id, customerID uuid.UUID) (GetPendingOrdersQueryResponse, error) {
	orderID, err := kernel.OrderIDFromString(id.String())
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	custID, err := kernel.CustomerIDFromString(customerID.String())
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return GetPendingOrdersQueryResponse{ID: orderID, CustomerID: custID}, nil
}
