package commands

import (
	"context"
	"errors"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// RedeemPointsCommandHandler converts a customer's points to a discount.
// Redemptions below the program minimum or above the balance fail with
// loyalty.ErrInsufficientBalance and leave the account untouched.
type RedeemPointsCommandHandler struct {
	uowFactory LoyaltyUoWFactory
}

// NewRedeemPointsCommandHandler creates a handler for point redemptions.
func NewRedeemPointsCommandHandler(uowFactory LoyaltyUoWFactory) RedeemPointsCommandHandler {
	return RedeemPointsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle redeems the points and returns the granted discount amount.
func (h *RedeemPointsCommandHandler) Handle(ctx context.Context, cmd RedeemPointsCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loyaltyRepo := uow.LoyaltyAccountRepository()
	account, err := loyaltyRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		// No account means no points were ever earned.
		return 0, loyalty.ErrInsufficientBalance
	}
	if err != nil {
		return 0, err
	}

	discount, err := account.Redeem(cmd.Points(), time.Now())
	if err != nil {
		return 0, err
	}

	if err = loyaltyRepo.Update(ctx, account); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return discount, nil
}
