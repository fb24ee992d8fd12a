// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
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

	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	TransitionRepoFactory interface {
		TransitionRepository() ports.TransitionRepository
	}

	EmailTemplateRepoFactory interface {
		EmailTemplateRepository() ports.EmailTemplateRepository
	}

	// StatusUoW manages transactions for status registry and transition graph
	// operations, which never touch orders.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
		TransitionRepoFactory
		EmailTemplateRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// UoW manages transactions that move orders between statuses. Every order
	// status write and its history row go through the same UoW.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   historyRepo := uow.StatusHistoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		StatusRepoFactory
		OrderRepoFactory
		StatusHistoryRepoFactory
		TransitionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
