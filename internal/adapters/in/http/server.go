package http

import (
	"context"
	"log/slog"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/generated/servers"
)

type (
	CreateEmployeeHandler interface {
		Handle(ctx context.Context, cmd commands.CreateEmployeeCommand) (int64, error)
	}
	LoginEmployeeHandler interface {
		Handle(ctx context.Context, cmd commands.LoginEmployeeCommand) (commands.LoginResult, error)
	}
	UnlockEmployeeHandler interface {
		Handle(ctx context.Context, cmd commands.UnlockEmployeeCommand) (employee.UnlockOutcome, error)
	}
	CreateServiceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateServiceOrderCommand) (commands.CreatedServiceOrder, error)
	}
	UpdateOrderCommentHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommentCommand) error
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	DeleteServiceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteServiceOrderCommand) error
	}
	DeleteAllServiceOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteAllServiceOrdersCommand) (int64, error)
	}
	ListServiceOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListServiceOrdersQuery) ([]queries.ServiceOrderView, error)
	}
	GetServiceTypesHandler interface {
		Handle(ctx context.Context, query queries.GetServiceTypesQuery) ([]queries.ServiceTypeView, error)
	}
	GetServiceTypeQuoteHandler interface {
		Handle(ctx context.Context, query queries.GetServiceTypeQuoteQuery) (queries.ServiceTypeQuote, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateEmployee         CreateEmployeeHandler
	LoginEmployee          LoginEmployeeHandler
	UnlockEmployee         UnlockEmployeeHandler
	CreateServiceOrder     CreateServiceOrderHandler
	UpdateOrderComment     UpdateOrderCommentHandler
	UpdateOrderStatus      UpdateOrderStatusHandler
	DeleteServiceOrder     DeleteServiceOrderHandler
	DeleteAllServiceOrders DeleteAllServiceOrdersHandler

	// Query handlers
	ListServiceOrders   ListServiceOrdersHandler
	GetServiceTypes     GetServiceTypesHandler
	GetServiceTypeQuote GetServiceTypeQuoteHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}
