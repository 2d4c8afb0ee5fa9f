package commands

import (
	"context"
	"errors"

	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/core/ports"
	"skiservice/internal/pkg/errs"
)

// Rejection reasons reported in errs.UnauthorizedError by the login handler.
const (
	ReasonUnknownEmployee    = "employee not found"
	ReasonAccountLocked      = "account is locked"
	ReasonInvalidCredentials = "invalid username or password"
	ReasonAccountJustLocked  = "account locked after too many failed login attempts"
)

// LoginResult is returned for a successful login.
type LoginResult struct {
	Username string
	Token    string
}

// LoginEmployeeCommandHandler evaluates a login attempt against the stored account.
//
// The employee row is read with GetByUsernameForUpdate, the lockout rules are applied
// and the new counter and lock flag are written in the same transaction. The token is
// only issued after the commit succeeded.
//
// Example:
//
//	cmd, _ := NewLoginEmployeeCommand("arda", "s3cret")
//	result, err := handler.Handle(ctx, cmd)
//	var unauthorized *errs.UnauthorizedError
//	if errors.As(err, &unauthorized) {
//	    // unauthorized.Reason tells which rejection happened
//	}
type LoginEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.AuthSessionIssuer
}

func NewLoginEmployeeCommandHandler(
	uowFactory EmployeeUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.AuthSessionIssuer,
) LoginEmployeeCommandHandler {
	return LoginEmployeeCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (h *LoginEmployeeCommandHandler) Handle(ctx context.Context, cmd LoginEmployeeCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()
	current, err := repo.GetByUsernameForUpdate(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.NewUnauthorizedErrorWithCause(ReasonUnknownEmployee, err)
	}
	if err != nil {
		return LoginResult{}, err
	}

	next, outcome := current.AttemptLogin(func() bool {
		return h.hasher.Compare(current.PasswordHash(), cmd.Password())
	})

	if next.Changed(current) {
		if err = repo.Update(ctx, next); err != nil {
			return LoginResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return LoginResult{}, err
		}
	}

	switch outcome {
	case employee.LoginSucceeded:
		token, issueErr := h.issuer.Issue(next.Username())
		if issueErr != nil {
			return LoginResult{}, issueErr
		}
		return LoginResult{Username: next.Username(), Token: token}, nil
	case employee.LoginRejectedLocked:
		return LoginResult{}, errs.NewUnauthorizedError(ReasonAccountLocked)
	case employee.LoginRejectedAndLocked:
		return LoginResult{}, errs.NewUnauthorizedError(ReasonAccountJustLocked)
	default:
		return LoginResult{}, errs.NewUnauthorizedError(ReasonInvalidCredentials)
	}
}
