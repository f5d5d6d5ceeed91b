// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery-agent
// aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAll retrieves every registered agent. The assignment engine works
	// over the full pool; coverage filtering happens in the domain service.
	GetAll(ctx context.Context) ([]*agent.Agent, error)
}
