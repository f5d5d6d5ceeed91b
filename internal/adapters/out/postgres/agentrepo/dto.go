// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence. The serviced pincodes live in a child table so
// the pincode tier lookup stays a plain indexed query.
package agentrepo

import (
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
type AgentDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name        string            `gorm:"not null"`
	ServiceArea string            `gorm:"not null;index"`
	Pincodes    []AgentPincodeDTO `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// AgentPincodeDTO is one pincode in an agent's coverage set.
type AgentPincodeDTO struct {
	AgentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Pincode string    `gorm:"primaryKey"`
}

// TableName specifies the database table name for agent pincode rows.
func (AgentPincodeDTO) TableName() string {
	return "agent_pincodes"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	pincodes := aggregate.ServicePincodes()
	rows := make([]AgentPincodeDTO, 0, len(pincodes))
	for _, pincode := range pincodes {
		rows = append(rows, AgentPincodeDTO{
			AgentID: aggregate.ID().Bytes(),
			Pincode: pincode,
		})
	}

	return AgentDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		ServiceArea: aggregate.ServiceArea(),
		Pincodes:    rows,
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pincodes := make([]string, 0, len(dto.Pincodes))
	for _, row := range dto.Pincodes {
		pincodes = append(pincodes, row.Pincode)
	}

	return agent.RestoreAgent(id, dto.Name, dto.ServiceArea, pincodes)
}
