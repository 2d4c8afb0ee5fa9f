// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"skiservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ServiceOrderRepoFactory provides access to the order repository within a transaction.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// ServiceTypeRepoFactory provides access to the catalog within a transaction.
	ServiceTypeRepoFactory interface {
		ServiceTypeRepository() ports.ServiceTypeRepository
	}

	// EmployeeUoW manages transactions for account operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   e, err := uow.EmployeeRepository().GetByUsernameForUpdate(ctx, "arda")
	//   // ... evaluate and update
	//
	//   err = uow.Commit(ctx)
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// ServiceOrderUoW manages transactions for order operations. Creating an order
	// reads the catalog in the same transaction.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
		ServiceTypeRepoFactory
	}

	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}
)
