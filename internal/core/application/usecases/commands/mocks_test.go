package commands_test

import (
	"context"
	"time"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/domain/model/servicetype"
	"skiservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e employee.Employee) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByUsernameForUpdate(
	ctx context.Context,
	username string,
) (employee.Employee, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockEmployeeUoW struct{ mock.Mock }

func (m *MockEmployeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, o *serviceorder.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, o *serviceorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) GetForUpdate(ctx context.Context, id int64) (*serviceorder.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*serviceorder.Order)
	return o, args.Error(1)
}

func (m *MockServiceOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockServiceTypeRepository struct{ mock.Mock }

func (m *MockServiceTypeRepository) Get(ctx context.Context, id int64) (*servicetype.ServiceType, error) {
	args := m.Called(ctx, id)
	st, _ := args.Get(0).(*servicetype.ServiceType)
	return st, args.Error(1)
}

func (m *MockServiceTypeRepository) GetAll(ctx context.Context) ([]*servicetype.ServiceType, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*servicetype.ServiceType)
	return all, args.Error(1)
}

type MockServiceOrderUoW struct{ mock.Mock }

func (m *MockServiceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockServiceOrderUoW) ServiceTypeRepository() ports.ServiceTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceTypeRepository)
}

type MockServiceOrderUoWFactory struct{ mock.Mock }

func (m *MockServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceOrderUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockAuthSessionIssuer struct{ mock.Mock }

func (m *MockAuthSessionIssuer) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *MockAuthSessionIssuer) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
