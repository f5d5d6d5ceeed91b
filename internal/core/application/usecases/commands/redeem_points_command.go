package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrRedeemPointsCommandIsNotConstructed = errors.New(
	"RedeemPointsCommand must be created via NewRedeemPointsCommand constructor",
)

// RedeemPointsCommand represents a customer converting loyalty points to a
// currency discount outside a checkout.
type RedeemPointsCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	points int

	guard guard.ConstructorGuard
}

// NewRedeemPointsCommand creates a command to redeem loyalty points.
func NewRedeemPointsCommand(userID kernel.UUID, points int) (RedeemPointsCommand, error) {
	if err := userID.Validate(); err != nil {
		return RedeemPointsCommand{}, err
	}
	if points <= 0 {
		return RedeemPointsCommand{}, errs.NewValueIsInvalidError("points")
	}

	return RedeemPointsCommand{
		userID: userID,
		points: points,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RedeemPointsCommand) Validate() error {
	return c.guard.Validate(ErrRedeemPointsCommandIsNotConstructed)
}

// UserID returns the redeeming customer.
func (c RedeemPointsCommand) UserID() kernel.UUID {
	return c.userID
}

// Points returns the number of points to redeem.
func (c RedeemPointsCommand) Points() int {
	return c.points
}
