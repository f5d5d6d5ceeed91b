package services

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
)

// ErrNoAgentAvailable is returned when no delivery agent can be assigned to
// an order. This occurs only when the agent pool is empty; with at least one
// registered agent the global fallback tier always produces a match.
var ErrNoAgentAvailable = errors.New("no delivery agent available")

// AgentAssigner is a domain service that selects a delivery agent for an
// order and executes the assignment.
//
// Selection runs over three coverage tiers, narrowest first:
//  1. agents whose service pincodes contain the destination pincode
//  2. agents whose service area matches the destination city
//  3. all agents (global fallback)
//
// Within the first non-empty tier the least-loaded agent wins, where load is
// the agent's current count of undelivered orders, supplied by the caller.
// Ties keep the first candidate encountered.
//
// Example usage:
//
//	assigner := services.NewAgentAssigner()
//	assigned, err := assigner.Assign(ord, agents, loads)
//	if errors.Is(err, services.ErrNoAgentAvailable) {
//	    // Order stays unassigned; a background job retries later.
//	    return
//	}
type AgentAssigner struct{}

// NewAgentAssigner creates a new AgentAssigner instance.
func NewAgentAssigner() AgentAssigner {
	return AgentAssigner{}
}

// Assign selects the best agent for the order's destination and assigns the
// order to them. The loads map carries each agent's current undelivered-order
// count; agents absent from the map are treated as idle.
func (a AgentAssigner) Assign(ord *order.Order, agents []*agent.Agent, loads map[kernel.UUID]int) (*agent.Agent, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	best, err := a.findBestAgent(ord.Destination(), agents, loads)
	if err != nil {
		return nil, err
	}

	if err := ord.AssignAgent(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestAgent evaluates the coverage tiers in order and picks the
// least-loaded agent from the first tier that has any candidates.
func (a AgentAssigner) findBestAgent(destination kernel.Destination, agents []*agent.Agent, loads map[kernel.UUID]int) (*agent.Agent, error) {
	for _, candidates := range [][]*agent.Agent{
		filterAgents(agents, func(ag *agent.Agent) bool { return ag.ServesPincode(destination.Pincode()) }),
		filterAgents(agents, func(ag *agent.Agent) bool { return ag.ServesCity(destination.City()) }),
		agents,
	} {
		best, err := leastLoaded(candidates, loads)
		if err != nil {
			return nil, err
		}
		if best != nil {
			return best, nil
		}
	}

	return nil, ErrNoAgentAvailable
}

func filterAgents(agents []*agent.Agent, matches func(*agent.Agent) bool) []*agent.Agent {
	var filtered []*agent.Agent
	for _, ag := range agents {
		if matches(ag) {
			filtered = append(filtered, ag)
		}
	}
	return filtered
}

func leastLoaded(candidates []*agent.Agent, loads map[kernel.UUID]int) (*agent.Agent, error) {
	var (
		best     *agent.Agent
		bestLoad int
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		load := loads[candidate.ID()]
		if best == nil || load < bestLoad {
			best = candidate
			bestLoad = load
		}
	}

	return best, nil
}
