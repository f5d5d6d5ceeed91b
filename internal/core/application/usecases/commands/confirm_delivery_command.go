package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the assigned delivery agent confirming
// that an order reached the customer.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm an order delivery.
func NewConfirmDeliveryCommand(orderID kernel.UUID, agentID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the acting delivery agent.
func (c ConfirmDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}
