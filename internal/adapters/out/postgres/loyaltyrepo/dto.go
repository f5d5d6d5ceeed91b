// Package loyaltyrepo provides data transfer objects and mapping functions
// for loyalty account persistence. The points history is append-only: entry
// rows are only ever inserted, and the account balance must equal the sum of
// its entry deltas at all times.
package loyaltyrepo

import (
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting loyalty
// account aggregates.
type AccountDTO struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Balance      int        `gorm:"not null"`
	TotalSpent   float64    `gorm:"not null"`
	Tier         int        `gorm:"not null"`
	ReferralCode string     `gorm:"not null;uniqueIndex"`
	ReferredBy   *uuid.UUID `gorm:"type:uuid"`
	Entries      []EntryDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for loyalty accounts.
func (AccountDTO) TableName() string {
	return "loyalty_accounts"
}

// EntryDTO is one row of the points history ledger. The auto-increment ID
// preserves insertion order across restores.
type EntryDTO struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Delta      int        `gorm:"not null"`
	Category   int        `gorm:"not null"`
	OrderID    *uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for loyalty ledger entries.
func (EntryDTO) TableName() string {
	return "loyalty_entries"
}

// fromDomain converts a loyalty account aggregate to its database
// representation.
func fromDomain(aggregate *loyalty.Account) AccountDTO {
	var referredBy *uuid.UUID
	if id := aggregate.ReferredBy(); id != nil {
		raw := id.Bytes()
		referredBy = &raw
	}

	history := aggregate.History()
	entries := make([]EntryDTO, 0, len(history))
	for _, entry := range history {
		entries = append(entries, entryFromDomain(aggregate.UserID(), entry))
	}

	return AccountDTO{
		UserID:       aggregate.UserID().Bytes(),
		Balance:      aggregate.Balance(),
		TotalSpent:   aggregate.TotalSpent(),
		Tier:         int(aggregate.Tier()),
		ReferralCode: aggregate.ReferralCode(),
		ReferredBy:   referredBy,
		Entries:      entries,
	}
}

func entryFromDomain(userID kernel.UUID, entry loyalty.Entry) EntryDTO {
	var orderID *uuid.UUID
	if id := entry.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return EntryDTO{
		UserID:     userID.Bytes(),
		Delta:      entry.Delta(),
		Category:   int(entry.Category()),
		OrderID:    orderID,
		OccurredAt: entry.OccurredAt(),
	}
}

// toDomain converts a database DTO to a loyalty account aggregate. Entries
// must already be sorted by their auto-increment ID so the restored history
// keeps insertion order.
func toDomain(dto AccountDTO, cfg loyalty.Config) (*loyalty.Account, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var referredBy *kernel.UUID
	if dto.ReferredBy != nil {
		rID, refErr := kernel.UUIDFromBytes((*dto.ReferredBy)[:])
		if refErr != nil {
			return nil, refErr
		}

		referredBy = &rID
	}

	history := make([]loyalty.Entry, 0, len(dto.Entries))
	for _, row := range dto.Entries {
		var orderID *kernel.UUID
		if row.OrderID != nil {
			oID, orderErr := kernel.UUIDFromBytes((*row.OrderID)[:])
			if orderErr != nil {
				return nil, orderErr
			}

			orderID = &oID
		}

		entry, entryErr := loyalty.RestoreEntry(
			row.Delta, loyalty.EntryCategory(row.Category), orderID, row.OccurredAt)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return loyalty.RestoreAccount(
		userID,
		dto.Balance,
		dto.TotalSpent,
		loyalty.Tier(dto.Tier),
		dto.ReferralCode,
		referredBy,
		history,
		cfg,
	)
}
