package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

// AssignPendingOrdersCommand triggers assignment of every unassigned order.
// Orders end up unassigned when they were created while the agent pool was
// empty; the background job issues this command periodically to drain them.
//
// Example:
//
//	cmd := NewAssignPendingOrdersCommand()
//	handler := NewAssignPendingOrdersCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoAgentsRegistered) {
//	    log.Println("Still no agents, will retry")
//	}
type AssignPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrdersCommand creates a new command to trigger assignment.
// This is a parameterless command.
func NewAssignPendingOrdersCommand() AssignPendingOrdersCommand {
	return AssignPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingOrdersCommandIsNotConstructed,
	)
}
