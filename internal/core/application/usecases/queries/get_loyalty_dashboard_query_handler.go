package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// historyTailLength bounds the dashboard history; the full ledger stays in
// the database.
const historyTailLength = 20

// GetLoyaltyDashboardQueryHandler reads a customer's loyalty state directly
// from the database, bypassing the aggregate for read performance.
type GetLoyaltyDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetLoyaltyDashboardQueryHandler creates a handler for dashboard queries.
func NewGetLoyaltyDashboardQueryHandler(db *gorm.DB) GetLoyaltyDashboardQueryHandler {
	return GetLoyaltyDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query. Returns the newest history entries
// first, capped at the tail length.
func (h GetLoyaltyDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltyDashboardQuery,
) (GetLoyaltyDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltyDashboardQueryResponse{}, err
	}

	var response GetLoyaltyDashboardQueryResponse

	var tier int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			balance,
			total_spent,
			tier,
			referral_code
		FROM loyalty_accounts
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&response.Points, &response.TotalSpent, &tier, &response.ReferralCode)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetLoyaltyDashboardQueryResponse{}, errs.NewObjectNotFoundError("loyalty account", query.UserID().String())
	}
	if err != nil {
		return GetLoyaltyDashboardQueryResponse{}, err
	}

	response.UserID = query.UserID()
	response.Tier = loyalty.Tier(tier).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delta,
			category,
			order_id,
			occurred_at
		FROM loyalty_entries
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, query.UserID().Bytes(), historyTailLength).Rows()
	if err != nil {
		return GetLoyaltyDashboardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry LoyaltyHistoryEntryResponse
		var category int
		var orderID *uuid.UUID

		if err = rows.Scan(&entry.Delta, &category, &orderID, &entry.OccurredAt); err != nil {
			return GetLoyaltyDashboardQueryResponse{}, err
		}

		entry.Category = loyalty.EntryCategory(category).String()
		if orderID != nil {
			id, idErr := kernel.UUIDFromBytes((*orderID)[:])
			if idErr != nil {
				return GetLoyaltyDashboardQueryResponse{}, idErr
			}
			entry.OrderID = &id
		}

		response.History = append(response.History, entry)
	}

	if err = rows.Err(); err != nil {
		return GetLoyaltyDashboardQueryResponse{}, err
	}

	return response, nil
}
