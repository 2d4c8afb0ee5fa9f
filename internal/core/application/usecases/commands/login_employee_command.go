package commands

import (
	"errors"
	"strings"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var ErrLoginEmployeeCommandIsNotConstructed = errors.New(
	"LoginEmployeeCommand must be created via NewLoginEmployeeCommand constructor",
)

// LoginEmployeeCommand is a credential check for one employee.
type LoginEmployeeCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginEmployeeCommand(username, password string) (LoginEmployeeCommand, error) {
	cmd := LoginEmployeeCommand{guard: guard.NewConstructorGuard()}

	username = strings.TrimSpace(username)
	if username == "" {
		return LoginEmployeeCommand{}, errs.NewValueIsRequiredError("username")
	}
	cmd.username = username
	cmd.password = password

	return cmd, nil
}

func (c LoginEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrLoginEmployeeCommandIsNotConstructed)
}

func (c LoginEmployeeCommand) Username() string {
	return c.username
}

func (c LoginEmployeeCommand) Password() string {
	return c.password
}
