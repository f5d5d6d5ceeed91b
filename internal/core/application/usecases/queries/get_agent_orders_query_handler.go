package queries

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler reads a delivery agent's work queue.
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent work queues.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle executes the query. Undelivered orders come first, then delivered
// ones, each group oldest first.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) ([]GetAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAgentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			destination_city,
			destination_pincode,
			payment_method,
			payment_status,
			cod_payment_received,
			delivery_status,
			return_status
		FROM orders
		WHERE agent_id = ?
		ORDER BY delivery_status, created_at
	`, query.AgentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAgentOrdersQueryResponse
		var id, customerID uuid.UUID
		var paymentMethod, paymentStatus, deliveryStatus, returnStatus int

		err = rows.Scan(
			&id,
			&customerID,
			&response.City,
			&response.Pincode,
			&paymentMethod,
			&paymentStatus,
			&response.CodPaymentReceived,
			&deliveryStatus,
			&returnStatus,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		buyerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = orderID
		response.CustomerID = buyerID
		response.PaymentMethod = order.PaymentMethod(paymentMethod).String()
		response.IsPaid = order.PaymentStatus(paymentStatus) == order.Paid
		response.IsDelivered = order.DeliveryStatus(deliveryStatus) == order.Delivered
		response.ReturnStatus = order.ReturnStatus(returnStatus).String()
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
