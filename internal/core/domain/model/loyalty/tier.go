package loyalty

import (
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// Tier is a customer status level unlocked by cumulative spend.
type Tier int

const (
	TierUnknown Tier = iota
	Silver
	Gold
	Platinum
)

var tierNames = map[Tier]string{
	Silver:   "silver",
	Gold:     "gold",
	Platinum: "platinum",
}

// TierFromString parses a tier name.
func TierFromString(value string) (Tier, error) {
	for tier, name := range tierNames {
		if name == value {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidError("tier")
}

// String returns the tier name.
func (t Tier) String() string {
	return tierNames[t]
}

// Validate ensures the tier holds a known value.
func (t Tier) Validate() error {
	if _, ok := tierNames[t]; !ok {
		return errs.NewValueIsInvalidError("tier")
	}
	return nil
}
