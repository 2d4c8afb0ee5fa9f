package commands

import (
	"errors"
	"strings"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var ErrUnlockEmployeeCommandIsNotConstructed = errors.New(
	"UnlockEmployeeCommand must be created via NewUnlockEmployeeCommand constructor",
)

// UnlockEmployeeCommand resets a locked account to active with zero failed attempts.
type UnlockEmployeeCommand struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

func NewUnlockEmployeeCommand(username string) (UnlockEmployeeCommand, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return UnlockEmployeeCommand{}, errs.NewValueIsRequiredError("username")
	}

	return UnlockEmployeeCommand{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UnlockEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrUnlockEmployeeCommandIsNotConstructed)
}

func (c UnlockEmployeeCommand) Username() string {
	return c.username
}
