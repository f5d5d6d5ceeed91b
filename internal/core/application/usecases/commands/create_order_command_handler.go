package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/services"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the checkout workflow. Within one
// transaction it redeems requested loyalty points, builds the order, picks a
// delivery agent and awards points earned on the paid amount. A redemption
// failure aborts the whole checkout; a missing delivery agent does not (the
// order is persisted unassigned and picked up later by the assignment job).
//
// The order-confirmation notification is sent after commit and is
// best-effort: a notifier failure is logged and never fails the checkout.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.AgentAssigner
	notifier   ports.Notifier
	loyaltyCfg loyalty.Config
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	assigner services.AgentAssigner,
	notifier ports.Notifier,
	loyaltyCfg loyalty.Config,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		notifier:   notifier,
		loyaltyCfg: loyaltyCfg,
		logger:     logger,
	}
}

// Handle processes the checkout command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, accountIsNew, err := getOrCreateAccount(ctx, uow.LoyaltyAccountRepository(), cmd.CustomerID(), h.loyaltyCfg)
	if err != nil {
		return nil, err
	}

	var pointsUsed order.RewardPointsUsed
	if cmd.RewardPointsToRedeem() > 0 {
		discount, err := account.Redeem(cmd.RewardPointsToRedeem(), now)
		if err != nil {
			return nil, err
		}
		pointsUsed = order.RewardPointsUsed{
			Points:         cmd.RewardPointsToRedeem(),
			DiscountAmount: discount,
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), items,
		cmd.Destination(), cmd.PaymentMethod(), pointsUsed, now,
	)
	if err != nil {
		return nil, err
	}

	// Points accrue on the instrument-paid amount only; the points-covered
	// portion of the total earns nothing.
	if _, _, err = account.Award(newOrder.AmountPayable(), newOrder.ID(), now); err != nil {
		return nil, err
	}

	if err = h.assignAgent(ctx, uow, newOrder); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	loyaltyRepo := uow.LoyaltyAccountRepository()
	if accountIsNew {
		err = loyaltyRepo.Add(ctx, account)
	} else {
		err = loyaltyRepo.Update(ctx, account)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.OrderConfirmed(ctx, newOrder); err != nil {
		h.logger.WarnContext(ctx, "order confirmation notification failed",
			"order_id", newOrder.ID().String(), "error", err)
	}

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) assignAgent(ctx context.Context, uow UoW, newOrder *order.Order) error {
	agents, err := uow.AgentRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	loads, err := uow.OrderRepository().CountUndeliveredByAgent(ctx)
	if err != nil {
		return err
	}

	_, err = h.assigner.Assign(newOrder, agents, loads)
	if errors.Is(err, services.ErrNoAgentAvailable) {
		h.logger.WarnContext(ctx, "no delivery agent available, order left unassigned",
			"order_id", newOrder.ID().String())
		return nil
	}
	return err
}

func buildItems(inputs []NewOrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.ProductID, input.Name, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// getOrCreateAccount loads the customer's loyalty account, opening one on
// first contact. The second return value reports whether the account is new
// and must be inserted rather than updated.
func getOrCreateAccount(
	ctx context.Context,
	repo ports.LoyaltyAccountRepository,
	userID kernel.UUID,
	cfg loyalty.Config,
) (*loyalty.Account, bool, error) {
	account, err := repo.Get(ctx, userID)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	account, err = loyalty.NewAccount(userID, cfg)
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}
