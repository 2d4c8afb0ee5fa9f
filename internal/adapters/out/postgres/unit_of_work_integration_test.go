package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "skiservice/internal/adapters/out/postgres"
	"skiservice/internal/adapters/out/postgres/pgtest"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/ports"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pgtest.SkipIfShort(suite.T())

	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Reset(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) addEmployee(username string) employee.Employee {
	ctx := context.Background()
	e, err := employee.NewEmployee(username, "$2a$10$hash")
	suite.Require().NoError(err)

	id, err := suite.factory.Create().EmployeeRepository().Add(ctx, e)
	suite.Require().NoError(err)
	return e.WithID(id)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.EmployeeRepository())
	suite.NotNil(uow1.ServiceOrderRepository())
	suite.NotNil(uow2.ServiceTypeRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	stored := suite.addEmployee("arda")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, _ := stored.AttemptLogin(func() bool { return false })
	suite.Require().NoError(uow.EmployeeRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Rollback(ctx))

	reloaded, err := suite.factory.Create().EmployeeRepository().GetByUsernameForUpdate(ctx, "arda")
	suite.Require().NoError(err)
	suite.Equal(0, reloaded.FailedLoginAttempts())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	customer, err := serviceorder.NewCustomer("Lukas Meier", "lukas@example.ch", "+41 79 123 45 67")
	suite.Require().NoError(err)
	o, err := serviceorder.NewOrder(customer, serviceorder.Express, 2, "", time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err = uow.ServiceTypeRepository().Get(ctx, 2)
	suite.Require().NoError(err)
	id, err := uow.ServiceOrderRepository().Add(ctx, o)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().ServiceOrderRepository().GetForUpdate(ctx, id)
	suite.Require().NoError(err)
}

// Concurrent failed logins on the same account must all be counted.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RowLockSerializesLoginAttempts() {
	ctx := context.Background()
	suite.addEmployee("arda")

	const attempts = 5
	var wg sync.WaitGroup
	errCh := make(chan error, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.failLogin(ctx, "arda")
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	reloaded, err := suite.factory.Create().EmployeeRepository().GetByUsernameForUpdate(ctx, "arda")
	suite.Require().NoError(err)
	suite.True(reloaded.IsLocked())
	suite.Equal(employee.MaxFailedLoginAttempts, reloaded.FailedLoginAttempts())
}

func (suite *UnitOfWorkIntegrationTestSuite) failLogin(ctx context.Context, username string) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.EmployeeRepository()
	current, err := repo.GetByUsernameForUpdate(ctx, username)
	if err != nil {
		return err
	}
	next, _ := current.AttemptLogin(func() bool { return false })
	if !next.Changed(current) {
		return nil
	}
	if err = repo.Update(ctx, next); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateUsername() {
	ctx := context.Background()
	suite.addEmployee("arda")

	e, err := employee.NewEmployee("arda", "$2a$10$other")
	suite.Require().NoError(err)
	_, err = suite.factory.Create().EmployeeRepository().Add(ctx, e)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
