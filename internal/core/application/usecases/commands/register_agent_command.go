package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand represents an admin registering a delivery agent with
// their service coverage.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID         kernel.UUID
	name            string
	serviceArea     string
	servicePincodes []string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a delivery agent.
// Full coverage validation (normalization, de-duplication) happens in the
// aggregate; the command only rejects obviously empty input.
func NewRegisterAgentCommand(
	agentID kernel.UUID,
	name string,
	serviceArea string,
	servicePincodes []string,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setServiceArea(serviceArea),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	cmd.servicePincodes = make([]string, len(servicePincodes))
	copy(cmd.servicePincodes, servicePincodes)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the new agent's identifier.
func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// ServiceArea returns the city the agent will serve.
func (c RegisterAgentCommand) ServiceArea() string {
	return c.serviceArea
}

// ServicePincodes returns the pincodes the agent will serve.
func (c RegisterAgentCommand) ServicePincodes() []string {
	pincodes := make([]string, len(c.servicePincodes))
	copy(pincodes, c.servicePincodes)
	return pincodes
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("agent name")
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setServiceArea(serviceArea string) error {
	if serviceArea == "" {
		return errs.NewValueIsRequiredError("service area")
	}

	c.serviceArea = serviceArea
	return nil
}
