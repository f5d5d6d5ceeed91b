package loyaltyrepo

import (
	"context"
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoyaltyAccountRepository implements LoyaltyAccountRepository using GORM.
type GormLoyaltyAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	cfg     loyalty.Config
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoyaltyAccountRepository creates a new GORM loyalty account
// repository. The config is used to restore account aggregates.
func NewGormLoyaltyAccountRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	cfg loyalty.Config,
) *GormLoyaltyAccountRepository {
	return &GormLoyaltyAccountRepository{
		db:      db,
		tracker: tracker,
		cfg:     cfg,
	}
}

// Add saves a new loyalty account to the database, history included.
func (r *GormLoyaltyAccountRepository) Add(
	ctx context.Context,
	aggregate *loyalty.Account,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Update saves an existing loyalty account. The ledger is append-only:
// already-persisted entry rows are never touched, only the history tail that
// grew since the load is inserted. Balance is written explicitly because a
// full redemption legitimately drives it to zero.
func (r *GormLoyaltyAccountRepository) Update(
	ctx context.Context,
	aggregate *loyalty.Account,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("user_id = ?", dto.UserID).
		Select("balance", "total_spent", "tier", "referred_by").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var stored int64
	if err := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("user_id = ?", dto.UserID).Count(&stored).Error; err != nil {
		return err
	}

	if appended := dto.Entries[stored:]; len(appended) > 0 {
		if err := r.db.WithContext(ctx).Create(&appended).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Get retrieves a loyalty account by the owning user's ID.
func (r *GormLoyaltyAccountRepository) Get(
	ctx context.Context,
	userID kernel.UUID,
) (*loyalty.Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.preloadEntries(ctx).
		First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loyalty account", userID.String())
		}
		return nil, err
	}

	return toDomain(dto, r.cfg)
}

// GetByReferralCode retrieves the loyalty account owning the given referral
// code.
func (r *GormLoyaltyAccountRepository) GetByReferralCode(
	ctx context.Context,
	code string,
) (*loyalty.Account, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("referral code")
	}

	var dto AccountDTO
	if err := r.preloadEntries(ctx).
		First(&dto, "referral_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loyalty account", code)
		}
		return nil, err
	}

	return toDomain(dto, r.cfg)
}

// preloadEntries loads the history in insertion order, the order the
// aggregate expects for its balance check.
func (r *GormLoyaltyAccountRepository) preloadEntries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("loyalty_entries.id")
	})
}
