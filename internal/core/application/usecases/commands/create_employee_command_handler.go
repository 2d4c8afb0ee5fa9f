package commands

import (
	"context"

	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/core/ports"
	"skiservice/internal/pkg/errs"
)

// CreateEmployeeCommandHandler stores a new account with a hashed password.
// A taken username is reported as errs.ErrObjectAlreadyExists and nothing is written.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateEmployeeCommandHandler(
	uowFactory EmployeeUoWFactory,
	hasher ports.PasswordHasher,
) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the id of the created employee.
func (h *CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()
	exists, err := repo.ExistsByUsername(ctx, cmd.Username())
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.NewObjectAlreadyExistsError("username", cmd.Username())
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	e, err := employee.NewEmployee(cmd.Username(), hash)
	if err != nil {
		return 0, err
	}

	id, err := repo.Add(ctx, e)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
