// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// LoyaltyRepoFactory provides access to the loyalty repository within a transaction.
	LoyaltyRepoFactory interface {
		LoyaltyAccountRepository() ports.LoyaltyAccountRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by lifecycle commands that touch a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// LoyaltyUoW manages transactions for loyalty-only operations.
	// Used for redemptions and referrals outside a checkout.
	LoyaltyUoW interface {
		TxManager
		LoyaltyRepoFactory
	}

	// LoyaltyUoWFactory creates new loyalty unit of work instances.
	LoyaltyUoWFactory interface {
		Create() LoyaltyUoW
	}

	// AssignmentUoW manages transactions spanning orders and agents.
	// Used by the background assignment job.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// UoW manages transactions across orders, agents and loyalty accounts.
	// The checkout is the one operation that coordinates all three: redeem
	// points, assign an agent, persist the order and award earned points as
	// a single unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   loyaltyRepo := uow.LoyaltyAccountRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		LoyaltyRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
