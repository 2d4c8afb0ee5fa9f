package commands

import (
	"errors"
	"strings"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand registers a new employee account.
//
// Example:
//
//	cmd, err := NewCreateEmployeeCommand("arda", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid employee data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewCreateEmployeeCommand(username, password string) (CreateEmployeeCommand, error) {
	cmd := CreateEmployeeCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return cmd, nil
}

func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

func (c CreateEmployeeCommand) Username() string {
	return c.username
}

func (c CreateEmployeeCommand) Password() string {
	return c.password
}

func (c *CreateEmployeeCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateEmployeeCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
