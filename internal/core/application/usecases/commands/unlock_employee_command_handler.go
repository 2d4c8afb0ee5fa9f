package commands

import (
	"context"

	"skiservice/internal/core/domain/model/employee"
)

// UnlockEmployeeCommandHandler unlocks an account. An account that is not locked
// is reported as employee.AlreadyUnlocked and nothing is written.
type UnlockEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewUnlockEmployeeCommandHandler(uowFactory EmployeeUoWFactory) UnlockEmployeeCommandHandler {
	return UnlockEmployeeCommandHandler{uowFactory: uowFactory}
}

func (h *UnlockEmployeeCommandHandler) Handle(
	ctx context.Context,
	cmd UnlockEmployeeCommand,
) (employee.UnlockOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return employee.UnlockOutcomeUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return employee.UnlockOutcomeUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()
	current, err := repo.GetByUsernameForUpdate(ctx, cmd.Username())
	if err != nil {
		return employee.UnlockOutcomeUnknown, err
	}

	next, outcome := current.Unlock()
	if outcome == employee.AlreadyUnlocked {
		return outcome, nil
	}

	if err = repo.Update(ctx, next); err != nil {
		return employee.UnlockOutcomeUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return employee.UnlockOutcomeUnknown, err
	}

	return outcome, nil
}
