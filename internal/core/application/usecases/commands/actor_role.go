package commands

import (
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// ActorRole identifies who is performing a command on someone else's
// aggregate. Roles are asserted by the transport layer; commands only
// enforce what each role is allowed to do.
type ActorRole int

const (
	ActorRoleUnknown ActorRole = iota
	ActorRoleCustomer
	ActorRoleAgent
	ActorRoleAdmin
)

var actorRoleNames = map[ActorRole]string{
	ActorRoleCustomer: "customer",
	ActorRoleAgent:    "agent",
	ActorRoleAdmin:    "admin",
}

// ActorRoleFromString parses a role name.
func ActorRoleFromString(value string) (ActorRole, error) {
	for role, name := range actorRoleNames {
		if name == value {
			return role, nil
		}
	}
	return ActorRoleUnknown, errs.NewValueIsInvalidError("actor role")
}

// String returns the role name.
func (r ActorRole) String() string {
	return actorRoleNames[r]
}

// Validate ensures the role holds a known value.
func (r ActorRole) Validate() error {
	if _, ok := actorRoleNames[r]; !ok {
		return errs.NewValueIsInvalidError("actor role")
	}
	return nil
}
