package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrApplyReferralCommandIsNotConstructed = errors.New(
	"ApplyReferralCommand must be created via NewApplyReferralCommand constructor",
)

// ApplyReferralCommand represents a new customer entering another customer's
// referral code. Both sides are credited atomically.
type ApplyReferralCommand struct { //nolint:recvcheck //using for validation
	code      string
	newUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyReferralCommand creates a command to apply a referral code.
func NewApplyReferralCommand(code string, newUserID kernel.UUID) (ApplyReferralCommand, error) {
	if code == "" {
		return ApplyReferralCommand{}, errs.NewValueIsRequiredError("referral code")
	}
	if err := newUserID.Validate(); err != nil {
		return ApplyReferralCommand{}, err
	}

	return ApplyReferralCommand{
		code:      code,
		newUserID: newUserID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyReferralCommand) Validate() error {
	return c.guard.Validate(ErrApplyReferralCommandIsNotConstructed)
}

// Code returns the entered referral code.
func (c ApplyReferralCommand) Code() string {
	return c.code
}

// NewUserID returns the referred customer.
func (c ApplyReferralCommand) NewUserID() kernel.UUID {
	return c.newUserID
}
