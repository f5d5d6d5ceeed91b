package commands

import (
	"context"
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/services"
)

var (
	ErrNoAgentsRegistered = errors.New("no agents registered")
	ErrNoPendingOrders    = errors.New("no pending orders")
)

// AssignPendingOrdersCommandHandler drains the unassigned-order backlog.
// Loads are recomputed from the order store before each pick so that orders
// assigned earlier in the same run count against their agent.
type AssignPendingOrdersCommandHandler struct {
	uowFactory AssignmentUoWFactory
	assigner   services.AgentAssigner
}

// NewAssignPendingOrdersCommandHandler creates a handler for backlog
// assignment operations.
func NewAssignPendingOrdersCommandHandler(uowFactory AssignmentUoWFactory) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAgentAssigner(),
	}
}

// Handle assigns every unassigned order to the best available agent within a
// single transaction. Returns ErrNoPendingOrders when the backlog is empty
// and ErrNoAgentsRegistered when there is nobody to assign to; both are
// expected outcomes for a periodic job.
func (h AssignPendingOrdersCommandHandler) Handle(ctx context.Context, command AssignPendingOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	pending, err := orderRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingOrders
	}

	agents, err := agentRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		return ErrNoAgentsRegistered
	}

	loads, err := orderRepo.CountUndeliveredByAgent(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		assigned, err := h.assigner.Assign(aggregate, agents, loads)
		if err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		// Count the fresh assignment so the next pick sees the new load.
		loads[assigned.ID()]++
	}

	return uow.Commit(ctx)
}
