package commands

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// CollectCodPaymentCommandHandler records cash collection for a COD order.
// Only the order's assigned agent may report collection; marking the order
// paid happens implicitly with the collection.
type CollectCodPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCollectCodPaymentCommandHandler creates a handler for COD collection.
func NewCollectCodPaymentCommandHandler(uowFactory OrderUoWFactory) CollectCodPaymentCommandHandler {
	return CollectCodPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the acting agent is the assigned one, records the
// collection and persists the order.
func (h *CollectCodPaymentCommandHandler) Handle(ctx context.Context, cmd CollectCodPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = authorizeAssignedAgent(aggregate, cmd.AgentID(), "collect COD payment"); err != nil {
		return err
	}

	if err = aggregate.CollectCodPayment(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// authorizeAssignedAgent rejects lifecycle actions from anyone but the
// agent currently assigned to the order.
func authorizeAssignedAgent(aggregate *order.Order, agentID kernel.UUID, action string) error {
	assigned := aggregate.Agent()
	if assigned == nil || !assigned.IsEqual(agentID) {
		return errs.NewUnauthorizedError("agent", action)
	}
	return nil
}
