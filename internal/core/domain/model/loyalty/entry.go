package loyalty

import (
	"errors"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the newEntry factory method.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via newEntry constructor")
)

// EntryCategory tags a points-history entry with its origin.
type EntryCategory int

const (
	EntryCategoryUnknown EntryCategory = iota
	Earned
	Redeemed
	Bonus
	Referral
)

var entryCategoryNames = map[EntryCategory]string{
	Earned:   "earned",
	Redeemed: "redeemed",
	Bonus:    "bonus",
	Referral: "referral",
}

// EntryCategoryFromString parses a category name.
func EntryCategoryFromString(value string) (EntryCategory, error) {
	for category, name := range entryCategoryNames {
		if name == value {
			return category, nil
		}
	}
	return EntryCategoryUnknown, errs.NewValueIsInvalidError("entry category")
}

// String returns the category name.
func (c EntryCategory) String() string {
	return entryCategoryNames[c]
}

// Validate ensures the category holds a known value.
func (c EntryCategory) Validate() error {
	if _, ok := entryCategoryNames[c]; !ok {
		return errs.NewValueIsInvalidError("entry category")
	}
	return nil
}

// Entry is a single signed points movement in an account's history.
// The history is append-only; entries are never modified or removed.
type Entry struct {
	delta      int
	category   EntryCategory
	orderID    *kernel.UUID
	occurredAt time.Time

	guard.ConstructorGuard
}

func newEntry(delta int, category EntryCategory, orderID *kernel.UUID, occurredAt time.Time) (Entry, error) {
	if delta == 0 {
		return Entry{}, errs.NewValueIsInvalidError("entry delta")
	}
	if err := category.Validate(); err != nil {
		return Entry{}, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return Entry{}, err
		}
	}

	return Entry{
		delta:      delta,
		category:   category,
		orderID:    orderID,
		occurredAt: occurredAt,

		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(delta int, category EntryCategory, orderID *kernel.UUID, occurredAt time.Time) (Entry, error) {
	return newEntry(delta, category, orderID, occurredAt)
}

// Delta returns the signed points movement.
func (e Entry) Delta() int {
	return e.delta
}

// Category returns the entry's origin tag.
func (e Entry) Category() EntryCategory {
	return e.category
}

// OrderID returns the related order, if any.
func (e Entry) OrderID() *kernel.UUID {
	return e.orderID
}

// OccurredAt returns the entry timestamp.
func (e Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Validate ensures the Entry instance was properly constructed.
func (e Entry) Validate() error {
	return e.ConstructorGuard.Validate(ErrEntryIsNotConstructed)
}
