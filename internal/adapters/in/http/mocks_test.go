package http_test

import (
	"context"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type CreateEmployeeHandlerMock struct{ mock.Mock }

func (m *CreateEmployeeHandlerMock) Handle(ctx context.Context, cmd commands.CreateEmployeeCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type LoginEmployeeHandlerMock struct{ mock.Mock }

func (m *LoginEmployeeHandlerMock) Handle(
	ctx context.Context,
	cmd commands.LoginEmployeeCommand,
) (commands.LoginResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.LoginResult), args.Error(1)
}

type UnlockEmployeeHandlerMock struct{ mock.Mock }

func (m *UnlockEmployeeHandlerMock) Handle(
	ctx context.Context,
	cmd commands.UnlockEmployeeCommand,
) (employee.UnlockOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(employee.UnlockOutcome), args.Error(1)
}

type CreateServiceOrderHandlerMock struct{ mock.Mock }

func (m *CreateServiceOrderHandlerMock) Handle(
	ctx context.Context,
	cmd commands.CreateServiceOrderCommand,
) (commands.CreatedServiceOrder, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreatedServiceOrder), args.Error(1)
}

type UpdateOrderCommentHandlerMock struct{ mock.Mock }

func (m *UpdateOrderCommentHandlerMock) Handle(ctx context.Context, cmd commands.UpdateOrderCommentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type UpdateOrderStatusHandlerMock struct{ mock.Mock }

func (m *UpdateOrderStatusHandlerMock) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type DeleteServiceOrderHandlerMock struct{ mock.Mock }

func (m *DeleteServiceOrderHandlerMock) Handle(ctx context.Context, cmd commands.DeleteServiceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type DeleteAllServiceOrdersHandlerMock struct{ mock.Mock }

func (m *DeleteAllServiceOrdersHandlerMock) Handle(
	ctx context.Context,
	cmd commands.DeleteAllServiceOrdersCommand,
) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type ListServiceOrdersHandlerMock struct{ mock.Mock }

func (m *ListServiceOrdersHandlerMock) Handle(
	ctx context.Context,
	query queries.ListServiceOrdersQuery,
) ([]queries.ServiceOrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.ServiceOrderView), args.Error(1)
}

type GetServiceTypesHandlerMock struct{ mock.Mock }

func (m *GetServiceTypesHandlerMock) Handle(
	ctx context.Context,
	query queries.GetServiceTypesQuery,
) ([]queries.ServiceTypeView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.ServiceTypeView), args.Error(1)
}

type GetServiceTypeQuoteHandlerMock struct{ mock.Mock }

func (m *GetServiceTypeQuoteHandlerMock) Handle(
	ctx context.Context,
	query queries.GetServiceTypeQuoteQuery,
) (queries.ServiceTypeQuote, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ServiceTypeQuote), args.Error(1)
}

// tokenVerifier accepts the tokens it was built with.
type tokenVerifier map[string]string

func (v tokenVerifier) Verify(token string) (string, error) {
	username, ok := v[token]
	if !ok {
		return "", errs.NewUnauthorizedError("invalid token")
	}
	return username, nil
}
