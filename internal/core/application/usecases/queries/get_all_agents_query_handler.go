package queries

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler retrieves all agents with their derived loads.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all agents sorted by name. The load
// column counts the agent's assigned undelivered orders at read time.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)
	positions := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.name,
			a.service_area,
			COUNT(o.id) AS current_load
		FROM agents a
		LEFT JOIN orders o ON o.agent_id = a.id AND o.delivery_status = ?
		GROUP BY a.id, a.name, a.service_area
		ORDER BY a.name
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllAgentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &response.Name, &response.ServiceArea, &response.CurrentLoad)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = agentID
		response.ServicePincodes = make([]string, 0)

		positions[id] = len(agents)
		agents = append(agents, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachPincodes(ctx, positions, agents); err != nil {
		return nil, err
	}

	return agents, nil
}

func (h GetAllAgentsQueryHandler) attachPincodes(
	ctx context.Context,
	positions map[uuid.UUID]int,
	agents []GetAllAgentsQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			agent_id,
			pincode
		FROM agent_pincodes
		ORDER BY agent_id, pincode
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var agentID uuid.UUID
		var pincode string

		if err = rows.Scan(&agentID, &pincode); err != nil {
			return err
		}

		if pos, ok := positions[agentID]; ok {
			agents[pos].ServicePincodes = append(agents[pos].ServicePincodes, pincode)
		}
	}

	return rows.Err()
}
