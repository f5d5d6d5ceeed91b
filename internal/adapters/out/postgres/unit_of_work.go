// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains the set of aggregates touched by one
// business transaction and coordinates writing them out atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.LoyaltyAccountRepository().Update(ctx, account); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction state; concurrent
// goroutines must use separate instances created from the shared factory.
package postgres

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/agentrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/loyaltyrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	loyaltyCfg loyalty.Config
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances;
// the loyalty configuration is needed to restore account aggregates from
// their persisted state.
func NewGormUnitOfWorkFactory(db *gorm.DB, loyaltyCfg loyalty.Config) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, loyaltyCfg: loyaltyCfg}
}

// Create produces a new UnitOfWork ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		loyaltyCfg:        f.loyaltyCfg,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repository accessors route through the
// active transaction when one exists, so a checkout that touches orders,
// agents and loyalty accounts commits or rolls back as a single unit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	loyaltyCfg        loyalty.Config
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// AgentRepository provides access to delivery agent persistence within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise they use the main database connection directly.
func (uow *GormUnitOfWork) AgentRepository() ports.AgentRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return agentrepo.NewGormAgentRepository(db, uow)
}

// OrderRepository provides access to order persistence within the unit of
// work. Operations execute within the current transaction if one is active,
// otherwise they use the main database connection directly.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// LoyaltyAccountRepository provides access to loyalty account persistence
// within the unit of work. Operations execute within the current transaction
// if one is active, otherwise they use the main database connection directly.
func (uow *GormUnitOfWork) LoyaltyAccountRepository() ports.LoyaltyAccountRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return loyaltyrepo.NewGormLoyaltyAccountRepository(db, uow, uow.loyaltyCfg)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations when aggregates are added or
// updated; the collected aggregates enable post-commit processing such as
// notification dispatch.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
