// Package postgres provides the GORM-based Unit of Work for the ski-service store
// together with the schema migrations.
//
// Every read-evaluate-write of a business operation runs through one UnitOfWork:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.EmployeeRepository()
//	e, err := repo.GetByUsernameForUpdate(ctx, "arda") // row stays locked
//	if err != nil {
//	    return err
//	}
//	next, _ := e.AttemptLogin(check)
//	if err = repo.Update(ctx, next); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken with the ...ForUpdate reads are held until Commit or Rollback
package postgres

import (
	"context"

	"skiservice/internal/adapters/out/postgres/employeerepo"
	"skiservice/internal/adapters/out/postgres/serviceorderrepo"
	"skiservice/internal/adapters/out/postgres/servicetyperepo"
	"skiservice/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction for one business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin again while a transaction is
// active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when no
// transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when no
// transaction is active, which is the normal case for a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// EmployeeRepository is bound to the active transaction, or to the plain
// connection when none is active.
func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn())
}

func (uow *GormUnitOfWork) ServiceOrderRepository() ports.ServiceOrderRepository {
	return serviceorderrepo.NewGormServiceOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ServiceTypeRepository() ports.ServiceTypeRepository {
	return servicetyperepo.NewGormServiceTypeRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
