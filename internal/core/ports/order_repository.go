package ports

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassigned retrieves undelivered orders that have no agent yet.
	// Used by the assignment retry job to pick up orders created while the
	// agent pool was empty.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// CountUndeliveredByAgent returns each agent's current load: the number
	// of orders assigned to them that are not yet delivered. Agents with no
	// open orders are absent from the map.
	CountUndeliveredByAgent(ctx context.Context) (map[kernel.UUID]int, error)
}
