package loyalty

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrInsufficientBalance is returned when a redemption asks for more
	// points than the account holds or fewer than the program minimum.
	ErrInsufficientBalance = errors.New("insufficient points balance")

	// ErrAlreadyReferred is returned when a referral is applied to a user
	// who already has a referrer recorded.
	ErrAlreadyReferred = errors.New("user already has a referrer")

	// ErrInvalidReferralCode is returned when no account holds the given
	// referral code.
	ErrInvalidReferralCode = errors.New("referral code does not exist")

	// ErrBalanceMismatch is returned when a restored account's balance does
	// not equal the sum of its history deltas.
	ErrBalanceMismatch = errors.New("balance does not match points history")
)

// Account is the loyalty aggregate for a single customer. The points history
// is append-only and the balance is kept equal to the sum of its deltas.
type Account struct {
	userID       kernel.UUID
	balance      int
	totalSpent   float64
	tier         Tier
	referralCode string
	referredBy   *kernel.UUID
	history      []Entry

	cfg Config

	isConstructed bool
}

// NewAccount opens a loyalty account for a customer. The referral code is
// generated here and never changes.
func NewAccount(userID kernel.UUID, cfg Config) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:       userID,
		balance:      0,
		totalSpent:   0,
		tier:         Silver,
		referralCode: newReferralCode(),
		cfg:          cfg,

		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an Account from persistence. The stored balance
// must equal the running sum of the history.
func RestoreAccount(
	userID kernel.UUID,
	balance int,
	totalSpent float64,
	tier Tier,
	referralCode string,
	referredBy *kernel.UUID,
	history []Entry,
	cfg Config,
) (*Account, error) {
	if err := errors.Join(
		userID.Validate(),
		tier.Validate(),
		cfg.Validate(),
	); err != nil {
		return nil, err
	}
	if referralCode == "" {
		return nil, errs.NewValueIsRequiredError("referral code")
	}
	if referredBy != nil {
		if err := referredBy.Validate(); err != nil {
			return nil, err
		}
	}

	sum := 0
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		sum += entry.Delta()
	}
	if sum != balance {
		return nil, ErrBalanceMismatch
	}
	if balance < 0 {
		return nil, errs.NewValueIsOutOfRangeError("balance", balance, 0, math.MaxInt)
	}

	account := &Account{
		userID:       userID,
		balance:      balance,
		totalSpent:   totalSpent,
		tier:         tier,
		referralCode: referralCode,
		referredBy:   referredBy,
		history:      append([]Entry(nil), history...),
		cfg:          cfg,

		isConstructed: true,
	}
	return account, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their owners.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.userID.IsEqual(other.userID)
}

// UserID returns the owning customer's identifier.
func (a *Account) UserID() kernel.UUID {
	return a.userID
}

// Balance returns the current points balance.
func (a *Account) Balance() int {
	return a.balance
}

// TotalSpent returns the cumulative paid amount.
func (a *Account) TotalSpent() float64 {
	return a.totalSpent
}

// Tier returns the current tier.
func (a *Account) Tier() Tier {
	return a.tier
}

// ReferralCode returns the account's shareable referral code.
func (a *Account) ReferralCode() string {
	return a.referralCode
}

// ReferredBy returns the referrer's user ID, if a referral was applied.
func (a *Account) ReferredBy() *kernel.UUID {
	return a.referredBy
}

// History returns a copy of the append-only points history.
func (a *Account) History() []Entry {
	history := make([]Entry, len(a.history))
	copy(history, a.history)
	return history
}

// Award credits points for a paid order: floor(amountPaid * earnRate) as an
// earned entry, plus the configured bonus entry if the added spend pushes the
// account into a higher tier. Returns the earned and bonus point amounts.
func (a *Account) Award(amountPaid float64, orderID kernel.UUID, now time.Time) (earned int, bonus int, err error) {
	if err := orderID.Validate(); err != nil {
		return 0, 0, err
	}
	if amountPaid < 0 {
		return 0, 0, errs.NewValueIsInvalidError("amount paid")
	}

	earned = int(math.Floor(amountPaid * a.cfg.EarnRate))
	if earned > 0 {
		if err := a.append(earned, Earned, &orderID, now); err != nil {
			return 0, 0, err
		}
	}

	previousTier := a.tier
	a.totalSpent += amountPaid
	a.tier = a.cfg.TierFor(a.totalSpent)

	if a.tier > previousTier {
		bonus = a.cfg.TierBonuses[a.tier]
		if bonus > 0 {
			if err := a.append(bonus, Bonus, &orderID, now); err != nil {
				return 0, 0, err
			}
		}
	}

	return earned, bonus, nil
}

// Redeem converts points to a currency discount. Redemptions below the
// program minimum or above the balance fail without mutating the account.
func (a *Account) Redeem(points int, now time.Time) (discount float64, err error) {
	if points < a.cfg.MinRedeemPoints || points > a.balance {
		return 0, ErrInsufficientBalance
	}

	if err := a.append(-points, Redeemed, nil, now); err != nil {
		return 0, err
	}
	return float64(points) * a.cfg.PointValue, nil
}

// CreditReferral credits the configured referral bonus. It is applied to
// both sides of a referral by the caller, under one transaction.
func (a *Account) CreditReferral(now time.Time) (int, error) {
	if a.cfg.ReferralBonus == 0 {
		return 0, nil
	}
	if err := a.append(a.cfg.ReferralBonus, Referral, nil, now); err != nil {
		return 0, err
	}
	return a.cfg.ReferralBonus, nil
}

// SetReferredBy records who referred this customer. A user can be referred
// at most once and never by themselves.
func (a *Account) SetReferredBy(referrerID kernel.UUID) error {
	if a.referredBy != nil {
		return ErrAlreadyReferred
	}
	if err := referrerID.Validate(); err != nil {
		return err
	}
	if a.userID.IsEqual(referrerID) {
		return errs.NewValueIsInvalidError("referrer")
	}

	a.referredBy = &referrerID
	return nil
}

func (a *Account) append(delta int, category EntryCategory, orderID *kernel.UUID, now time.Time) error {
	entry, err := newEntry(delta, category, orderID, now)
	if err != nil {
		return err
	}

	a.history = append(a.history, entry)
	a.balance += delta
	return nil
}

func newReferralCode() string {
	raw := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")
	return "JWL-" + strings.ToUpper(raw[:8])
}
