package queries

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every registered delivery agent together with
// their current load (count of undelivered assigned orders). The load is
// computed from the order store on every call, never cached.
//
// Example:
//
//	query := NewGetAllAgentsQuery()
//	handler := NewGetAllAgentsQueryHandler(db)
//
//	agents, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve agents: %w", err)
//	}
//
//	for _, agent := range agents {
//	    fmt.Printf("%s (%s): %d open orders\n", agent.Name, agent.ServiceArea, agent.CurrentLoad)
//	}
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all agents.
// This is a parameterless query that fetches the complete agent list.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse represents agent information in the read model.
type GetAllAgentsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	ServiceArea     string
	ServicePincodes []string
	CurrentLoad     int
}
