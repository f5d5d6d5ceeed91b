package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// RequestReturnExchangeCommandHandler opens a return or exchange request.
// Only the order owner may request, the order must already be delivered and
// at most one request can ever exist per order; the domain enforces the
// latter two.
type RequestReturnExchangeCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRequestReturnExchangeCommandHandler creates a handler for return and
// exchange requests.
func NewRequestReturnExchangeCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger) RequestReturnExchangeCommandHandler {
	return RequestReturnExchangeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle verifies ownership, records the request and persists the order.
func (h *RequestReturnExchangeCommandHandler) Handle(ctx context.Context, cmd RequestReturnExchangeCommand) error {
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

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("customer", "request return or exchange")
	}

	if err = aggregate.RequestReturn(cmd.RequestType(), cmd.Reason(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.ReturnStatusChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "return request notification failed",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
