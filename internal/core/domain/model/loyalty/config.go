package loyalty

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// Config holds the loyalty-program constants. It is passed into accounts at
// construction so tests can run with deterministic values and production can
// tune the program without touching domain code.
type Config struct {
	// EarnRate is the fraction of the paid amount converted to points.
	EarnRate float64
	// PointValue is the currency value of a single redeemed point.
	PointValue float64
	// MinRedeemPoints is the smallest redeemable number of points.
	MinRedeemPoints int
	// GoldThreshold and PlatinumThreshold are cumulative-spend boundaries.
	GoldThreshold     float64
	PlatinumThreshold float64
	// TierBonuses are one-time point rewards granted on tier upgrade.
	TierBonuses map[Tier]int
	// ReferralBonus is credited to both referrer and referee.
	ReferralBonus int
}

// DefaultConfig returns the program defaults.
func DefaultConfig() Config {
	return Config{
		EarnRate:          0.01,
		PointValue:        1.0,
		MinRedeemPoints:   100,
		GoldThreshold:     50000,
		PlatinumThreshold: 200000,
		TierBonuses: map[Tier]int{
			Gold:     500,
			Platinum: 2000,
		},
		ReferralBonus: 200,
	}
}

// Validate checks the config for values the program cannot operate with.
func (c Config) Validate() error {
	return errors.Join(
		validatePositive("earn rate", c.EarnRate),
		validatePositive("point value", c.PointValue),
		validateNonNegativeInt("minimum redeem points", c.MinRedeemPoints),
		validatePositive("gold threshold", c.GoldThreshold),
		validatePositive("platinum threshold", c.PlatinumThreshold),
		validateNonNegativeInt("referral bonus", c.ReferralBonus),
	)
}

// TierFor derives the tier for a cumulative spend.
func (c Config) TierFor(totalSpent float64) Tier {
	switch {
	case totalSpent >= c.PlatinumThreshold:
		return Platinum
	case totalSpent >= c.GoldThreshold:
		return Gold
	default:
		return Silver
	}
}

func validatePositive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}
