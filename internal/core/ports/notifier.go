package ports

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
)

// Notifier sends customer-facing notifications about order lifecycle events.
// Delivery is best-effort: callers log failures and never roll back the
// business transaction because of them.
type Notifier interface {
	// OrderConfirmed notifies the customer that their order was placed.
	OrderConfirmed(ctx context.Context, aggregate *order.Order) error

	// OrderDelivered notifies the customer that their order was delivered.
	OrderDelivered(ctx context.Context, aggregate *order.Order) error

	// ReturnStatusChanged notifies the customer about a return or exchange
	// request moving through its lifecycle.
	ReturnStatusChanged(ctx context.Context, aggregate *order.Order) error
}
