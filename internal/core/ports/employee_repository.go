// Package ports defines the contracts between the ski-service core and its
// infrastructure: persistence, session tokens, password hashing and time.
package ports

import (
	"context"

	"skiservice/internal/core/domain/model/employee"
)

// EmployeeRepository defines the persistence contract for employee accounts.
type EmployeeRepository interface {
	// Add persists a new employee and returns the id assigned by storage.
	// Returns errs.ErrObjectAlreadyExists when the username is taken.
	Add(ctx context.Context, e employee.Employee) (int64, error)

	// Update writes the lock flag and the failed-attempt counter of an existing employee.
	Update(ctx context.Context, e employee.Employee) error

	// GetByUsernameForUpdate reads the employee and locks its row until the
	// surrounding transaction ends. Returns errs.ErrObjectNotFound when no
	// employee has the username. Concurrent logins for the same username are
	// serialized by this lock.
	GetByUsernameForUpdate(ctx context.Context, username string) (employee.Employee, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
