package employeerepo_test

import (
	"context"
	"testing"

	"skiservice/internal/adapters/out/postgres/employeerepo"
	"skiservice/internal/adapters/out/postgres/pgtest"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type EmployeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *employeerepo.GormEmployeeRepository
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupSuite() {
	pgtest.SkipIfShort(suite.T())

	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Reset(suite.db))
	suite.repository = employeerepo.NewGormEmployeeRepository(suite.db)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()
	e, err := employee.NewEmployee("arda", "$2a$10$hash")
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, e)
	suite.Require().NoError(err)
	suite.Positive(id)

	stored, err := suite.repository.GetByUsernameForUpdate(ctx, "arda")
	suite.Require().NoError(err)
	suite.Equal(id, stored.ID())
	suite.Equal("$2a$10$hash", stored.PasswordHash())
	suite.False(stored.IsLocked())
	suite.Zero(stored.FailedLoginAttempts())
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername() {
	ctx := context.Background()
	e, _ := employee.NewEmployee("arda", "$2a$10$hash")
	_, err := suite.repository.Add(ctx, e)
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, e)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdate_WritesLockState() {
	ctx := context.Background()
	e, _ := employee.NewEmployee("arda", "$2a$10$hash")
	id, err := suite.repository.Add(ctx, e)
	suite.Require().NoError(err)

	locked, err := employee.RestoreEmployee(id, "arda", "$2a$10$hash", true, 3)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, locked))

	stored, err := suite.repository.GetByUsernameForUpdate(ctx, "arda")
	suite.Require().NoError(err)
	suite.True(stored.IsLocked())
	suite.Equal(3, stored.FailedLoginAttempts())
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdate_UnknownEmployee() {
	ghost, err := employee.RestoreEmployee(999, "ghost", "$2a$10$hash", false, 1)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestGetByUsernameForUpdate_NotFound() {
	_, err := suite.repository.GetByUsernameForUpdate(context.Background(), "ghost")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestExistsByUsername() {
	ctx := context.Background()
	exists, err := suite.repository.ExistsByUsername(ctx, "arda")
	suite.Require().NoError(err)
	suite.False(exists)

	e, _ := employee.NewEmployee("arda", "$2a$10$hash")
	_, err = suite.repository.Add(ctx, e)
	suite.Require().NoError(err)

	exists, err = suite.repository.ExistsByUsername(ctx, "arda")
	suite.Require().NoError(err)
	suite.True(exists)
}

func TestEmployeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryIntegrationTestSuite))
}
