package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand represents moving an order's return or exchange
// request through its lifecycle. Approval and rejection are admin decisions;
// pickup and completion are reported by the assigned delivery agent.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    kernel.UUID
	actorRole  ActorRole
	nextStatus order.ReturnStatus

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to advance a return or
// exchange request.
func NewUpdateReturnStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole ActorRole,
	nextStatus order.ReturnStatus,
) (UpdateReturnStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		nextStatus.Validate(),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return UpdateReturnStatusCommand{
		orderID:    orderID,
		actorID:    actorID,
		actorRole:  actorRole,
		nextStatus: nextStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// OrderID returns the order whose request is being advanced.
func (c UpdateReturnStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting user.
func (c UpdateReturnStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the acting user's role.
func (c UpdateReturnStatusCommand) ActorRole() ActorRole {
	return c.actorRole
}

// NextStatus returns the requested target status.
func (c UpdateReturnStatusCommand) NextStatus() order.ReturnStatus {
	return c.nextStatus
}
