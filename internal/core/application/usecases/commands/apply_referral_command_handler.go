package commands

import (
	"context"
	"errors"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// ApplyReferralCommandHandler credits a referral to both sides, or neither.
// The referrer is resolved by code; the referee's account is opened on the
// spot if this is their first contact with the program. Both credits and the
// referred-by mark land in one transaction.
type ApplyReferralCommandHandler struct {
	uowFactory LoyaltyUoWFactory
	loyaltyCfg loyalty.Config
}

// NewApplyReferralCommandHandler creates a handler for referral application.
func NewApplyReferralCommandHandler(uowFactory LoyaltyUoWFactory, loyaltyCfg loyalty.Config) ApplyReferralCommandHandler {
	return ApplyReferralCommandHandler{
		uowFactory: uowFactory,
		loyaltyCfg: loyaltyCfg,
	}
}

// Handle resolves the code, marks the referee as referred and credits the
// bonus to both accounts atomically.
func (h *ApplyReferralCommandHandler) Handle(ctx context.Context, cmd ApplyReferralCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loyaltyRepo := uow.LoyaltyAccountRepository()

	referrer, err := loyaltyRepo.GetByReferralCode(ctx, cmd.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return loyalty.ErrInvalidReferralCode
	}
	if err != nil {
		return err
	}

	referee, refereeIsNew, err := getOrCreateAccount(ctx, loyaltyRepo, cmd.NewUserID(), h.loyaltyCfg)
	if err != nil {
		return err
	}

	if err = referee.SetReferredBy(referrer.UserID()); err != nil {
		return err
	}

	if _, err = referrer.CreditReferral(now); err != nil {
		return err
	}
	if _, err = referee.CreditReferral(now); err != nil {
		return err
	}

	if err = loyaltyRepo.Update(ctx, referrer); err != nil {
		return err
	}

	if refereeIsNew {
		err = loyaltyRepo.Add(ctx, referee)
	} else {
		err = loyaltyRepo.Update(ctx, referee)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
