// Package notify provides the outbound notification adapter. The current
// implementation writes structured log records; a real channel (email, SMS,
// push) can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
)

// SlogNotifier implements ports.Notifier by emitting structured log records
// for each customer-facing event.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// OrderConfirmed notifies the customer that their order was placed.
func (n *SlogNotifier) OrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "notification: order confirmed",
		"order_id", aggregate.ID().String(),
		"customer_id", aggregate.CustomerID().String(),
		"amount_payable", aggregate.AmountPayable(),
		"payment_method", aggregate.PaymentMethod().String(),
	)
	return nil
}

// OrderDelivered notifies the customer that their order was delivered.
func (n *SlogNotifier) OrderDelivered(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "notification: order delivered",
		"order_id", aggregate.ID().String(),
		"customer_id", aggregate.CustomerID().String(),
	)
	return nil
}

// ReturnStatusChanged notifies the customer about a return or exchange
// request moving through its lifecycle.
func (n *SlogNotifier) ReturnStatusChanged(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "notification: return status changed",
		"order_id", aggregate.ID().String(),
		"customer_id", aggregate.CustomerID().String(),
		"request_type", aggregate.ReturnRequest().Type().String(),
		"status", aggregate.ReturnRequest().Status().String(),
		"refunded", aggregate.IsRefunded(),
	)
	return nil
}
