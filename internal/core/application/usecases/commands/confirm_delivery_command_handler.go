package commands

import (
	"context"
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"
)

// ConfirmDeliveryCommandHandler marks an order as delivered. The transition
// is guarded in the domain: a COD order cannot be delivered until its cash
// has been collected. Only the assigned agent may confirm.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle verifies the acting agent, transitions the order to delivered and
// notifies the customer after commit.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = authorizeAssignedAgent(aggregate, cmd.AgentID(), "confirm delivery"); err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.OrderDelivered(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "delivery notification failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
