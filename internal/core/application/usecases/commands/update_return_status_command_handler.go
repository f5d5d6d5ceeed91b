package commands

import (
	"context"
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// UpdateReturnStatusCommandHandler advances a return or exchange request.
//
// Separation of duties: an admin decides policy (approve or reject, and may
// perform any valid transition), the assigned delivery agent confirms the
// physical steps (picked up, completed). When a return reaches completed the
// domain flips the refund flag atomically with the status write.
type UpdateReturnStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateReturnStatusCommandHandler creates a handler for return-status
// updates.
func NewUpdateReturnStatusCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle authorizes the actor for the requested transition, applies it and
// persists the order.
func (h *UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
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

	if err = authorizeReturnTransition(aggregate, cmd); err != nil {
		return err
	}

	if err = aggregate.UpdateReturnStatus(cmd.NextStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.ReturnStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "return status notification failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}

func authorizeReturnTransition(aggregate *order.Order, cmd UpdateReturnStatusCommand) error {
	if cmd.ActorRole() == ActorRoleAdmin {
		return nil
	}

	switch cmd.NextStatus() {
	case order.ReturnPickedUp, order.ReturnCompleted:
		if cmd.ActorRole() != ActorRoleAgent {
			return errs.NewUnauthorizedError(cmd.ActorRole().String(), "confirm return pickup or completion")
		}
		return authorizeAssignedAgent(aggregate, cmd.ActorID(), "update return status")
	default:
		return errs.NewUnauthorizedError(cmd.ActorRole().String(), "approve or reject return request")
	}
}
