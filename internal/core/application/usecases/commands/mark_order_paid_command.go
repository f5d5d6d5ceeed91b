package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a payment-verification callback for a
// prepaid order. COD orders are paid through COD collection instead.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark a prepaid order as paid.
func NewMarkOrderPaidCommand(orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}
