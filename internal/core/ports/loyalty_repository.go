package ports

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
)

// LoyaltyAccountRepository defines the persistence contract for loyalty
// accounts. Accounts are keyed by the owning customer's user ID.
type LoyaltyAccountRepository interface {
	// Add persists a new loyalty account to storage.
	Add(ctx context.Context, aggregate *loyalty.Account) error

	// Update persists changes to an existing account. Only new history
	// entries are ever written; the ledger is append-only.
	Update(ctx context.Context, aggregate *loyalty.Account) error

	// Get retrieves the account owned by the given user.
	Get(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error)

	// GetByReferralCode retrieves the account holding the given referral
	// code. Used to resolve the referrer when a referral is applied.
	GetByReferralCode(ctx context.Context, code string) (*loyalty.Account, error)
}
