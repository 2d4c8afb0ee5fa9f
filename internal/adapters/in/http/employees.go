package http

import (
	"net/http"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	messageEmployeeCreated  = "employee created"
	messageEmployeeUnlocked = "employee unlocked"
	messageAlreadyUnlocked  = "employee is not locked"
	messageSessionValid     = "token is valid"
)

// CreateEmployee handles POST /api/employees/create.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var body servers.NewEmployee
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateEmployeeCommand(body.Username, body.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	id, err := s.handlers.CreateEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.EmployeeCreated{
		Message:    messageEmployeeCreated,
		EmployeeId: id,
	})
}

// LoginEmployee handles POST /api/employees/login. Every rejection is a 401 whose
// message tells the reason apart.
func (s *Server) LoginEmployee(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewLoginEmployeeCommand(body.Username, body.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.LoginEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		UserName: result.Username,
		Token:    result.Token,
	})
}

// UnlockEmployee handles POST /api/employees/unlock/{username}.
func (s *Server) UnlockEmployee(ctx echo.Context, username string) error {
	cmd, err := commands.NewUnlockEmployeeCommand(username)
	if err != nil {
		return s.respondError(ctx, err)
	}

	outcome, err := s.handlers.UnlockEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if outcome == employee.AlreadyUnlocked {
		return ctx.JSON(http.StatusOK, servers.UnlockResponse{
			Message:         messageAlreadyUnlocked,
			AlreadyUnlocked: true,
		})
	}

	return ctx.JSON(http.StatusOK, servers.UnlockResponse{Message: messageEmployeeUnlocked})
}

// ValidateSession handles GET /api/employees/validate. The token itself is checked by
// the bearer middleware before this runs.
func (s *Server) ValidateSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.SessionResponse{
		Message:  messageSessionValid,
		UserName: SessionUsername(ctx),
	})
}
