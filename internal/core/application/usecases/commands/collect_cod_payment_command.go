package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrCollectCodPaymentCommandIsNotConstructed = errors.New(
	"CollectCodPaymentCommand must be created via NewCollectCodPaymentCommand constructor",
)

// CollectCodPaymentCommand represents the assigned delivery agent reporting
// cash collection for a cash-on-delivery order.
type CollectCodPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCollectCodPaymentCommand creates a command to record COD collection.
// The agent ID identifies the acting agent, checked against the assignment.
func NewCollectCodPaymentCommand(orderID kernel.UUID, agentID kernel.UUID) (CollectCodPaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return CollectCodPaymentCommand{}, err
	}

	return CollectCodPaymentCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectCodPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCollectCodPaymentCommandIsNotConstructed)
}

// OrderID returns the COD order.
func (c CollectCodPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the acting delivery agent.
func (c CollectCodPaymentCommand) AgentID() kernel.UUID {
	return c.agentID
}
