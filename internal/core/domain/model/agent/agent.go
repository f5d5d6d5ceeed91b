package agent

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through the NewAgent or RestoreAgent factory methods.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent represents a delivery agent and their service coverage.
//
// Coverage has two granularities: servicePincodes is the precise locality
// signal, serviceArea (a city) is the coarse one. Both are stored normalized
// (the same normalization the Destination value object applies), so coverage
// checks are plain equality.
//
// An agent's current load is never stored on the aggregate; it is always
// derived from the order store (count of the agent's undelivered orders).
type Agent struct {
	id              kernel.UUID
	name            string
	serviceArea     string
	servicePincodes []string

	isConstructed bool
}

// NewAgent registers a delivery agent. The service area (city) is required;
// the pincode set may be empty, in which case the agent is matched at city
// level only. Pincodes are normalized and de-duplicated, preserving order.
func NewAgent(id kernel.UUID, name string, serviceArea string, servicePincodes []string) (*Agent, error) {
	agent := &Agent{
		isConstructed: true,
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setServiceArea(serviceArea),
		agent.setServicePincodes(servicePincodes),
	); err != nil {
		return nil, err
	}

	return agent, nil
}

// RestoreAgent reconstructs an Agent from persistence.
func RestoreAgent(id kernel.UUID, name string, serviceArea string, servicePincodes []string) (*Agent, error) {
	return NewAgent(id, name, serviceArea, servicePincodes)
}

// Validate ensures the Agent instance was properly constructed through
// NewAgent or RestoreAgent.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// ServiceArea returns the normalized city the agent serves.
func (a *Agent) ServiceArea() string {
	return a.serviceArea
}

// ServicePincodes returns a copy of the normalized pincode set.
func (a *Agent) ServicePincodes() []string {
	pincodes := make([]string, len(a.servicePincodes))
	copy(pincodes, a.servicePincodes)
	return pincodes
}

// ServesPincode reports whether the agent's pincode set contains the given
// (raw) pincode.
func (a *Agent) ServesPincode(pincode string) bool {
	normalized := kernel.NormalizePincode(pincode)
	for _, p := range a.servicePincodes {
		if p == normalized {
			return true
		}
	}
	return false
}

// ServesCity reports whether the agent's service area matches the given
// (raw) city, case-insensitively.
func (a *Agent) ServesCity(city string) bool {
	return a.serviceArea == kernel.NormalizeCity(city)
}

// UpdateCoverage replaces the agent's service area and pincode set.
// This is the only mutation an agent record supports.
func (a *Agent) UpdateCoverage(serviceArea string, servicePincodes []string) error {
	if err := errors.Join(
		a.setServiceArea(serviceArea),
		a.setServicePincodes(servicePincodes),
	); err != nil {
		return err
	}
	return nil
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("agent name")
	}
	a.name = name
	return nil
}

func (a *Agent) setServiceArea(serviceArea string) error {
	normalized := kernel.NormalizeCity(serviceArea)
	if normalized == "" {
		return errs.NewValueIsRequiredError("service area")
	}
	a.serviceArea = normalized
	return nil
}

func (a *Agent) setServicePincodes(servicePincodes []string) error {
	seen := make(map[string]struct{}, len(servicePincodes))
	normalized := make([]string, 0, len(servicePincodes))
	for _, raw := range servicePincodes {
		pincode := kernel.NormalizePincode(raw)
		if pincode == "" {
			return errs.NewValueIsRequiredError("service pincode")
		}
		if _, ok := seen[pincode]; ok {
			continue
		}
		seen[pincode] = struct{}{}
		normalized = append(normalized, pincode)
	}

	a.servicePincodes = normalized
	return nil
}
