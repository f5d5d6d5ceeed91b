package orderrepo

import (
	"context"
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, line items included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are immutable
// after creation and are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Omit("Items").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves the pending orders that have no delivery agent
// yet, oldest first, so the assignment job drains the backlog in order.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("agent_id IS NULL AND delivery_status = ?", int(order.Pending)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountUndeliveredByAgent returns the number of assigned undelivered orders
// per agent. Agents with no open orders are absent from the map; callers
// treat a missing agent as idle.
func (r *GormOrderRepository) CountUndeliveredByAgent(
	ctx context.Context,
) (map[kernel.UUID]int, error) {
	rows, err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("agent_id, COUNT(*) AS open_orders").
		Where("agent_id IS NOT NULL AND delivery_status = ?", int(order.Pending)).
		Group("agent_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make(map[kernel.UUID]int)
	for rows.Next() {
		var agentID uuid.UUID
		var count int

		if err = rows.Scan(&agentID, &count); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(agentID[:])
		if idErr != nil {
			return nil, idErr
		}
		loads[id] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
