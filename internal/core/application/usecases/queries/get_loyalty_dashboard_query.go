// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrGetLoyaltyDashboardQueryIsNotConstructed = errors.New(
	"GetLoyaltyDashboardQuery must be created via NewGetLoyaltyDashboardQuery constructor",
)

// GetLoyaltyDashboardQuery retrieves a customer's loyalty state: balance,
// tier, referral code and the tail of the points history.
type GetLoyaltyDashboardQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoyaltyDashboardQuery creates a query for a customer's dashboard.
func NewGetLoyaltyDashboardQuery(userID kernel.UUID) (GetLoyaltyDashboardQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetLoyaltyDashboardQuery{}, err
	}

	return GetLoyaltyDashboardQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoyaltyDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyDashboardQueryIsNotConstructed)
}

// UserID returns the customer whose dashboard is requested.
func (q GetLoyaltyDashboardQuery) UserID() kernel.UUID {
	return q.userID
}

// GetLoyaltyDashboardQueryResponse is the loyalty dashboard read model.
type GetLoyaltyDashboardQueryResponse struct {
	UserID       kernel.UUID
	Points       int
	TotalSpent   float64
	Tier         string
	ReferralCode string
	History      []LoyaltyHistoryEntryResponse
}

// LoyaltyHistoryEntryResponse is a single points movement in the dashboard.
type LoyaltyHistoryEntryResponse struct {
	Delta      int
	Category   string
	OrderID    *kernel.UUID
	OccurredAt time.Time
}
