package queries

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders assigned to one delivery agent,
// their work queue.
type GetAgentOrdersQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's order list.
func NewGetAgentOrdersQuery(agentID kernel.UUID) (GetAgentOrdersQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return GetAgentOrdersQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentID returns the agent whose orders are requested.
func (q GetAgentOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentOrdersQueryResponse is one of the agent's orders in the read model.
type GetAgentOrdersQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	City               string
	Pincode            string
	PaymentMethod      string
	IsPaid             bool
	CodPaymentReceived bool
	IsDelivered        bool
	ReturnStatus       string
}
