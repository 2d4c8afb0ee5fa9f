package commands

import (
	"errors"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var (
	ErrDeleteServiceOrderCommandIsNotConstructed = errors.New(
		"DeleteServiceOrderCommand must be created via NewDeleteServiceOrderCommand constructor",
	)
	ErrDeleteAllServiceOrdersCommandIsNotConstructed = errors.New(
		"DeleteAllServiceOrdersCommand must be created via NewDeleteAllServiceOrdersCommand constructor",
	)
)

type DeleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteServiceOrderCommand(orderID int64) (DeleteServiceOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return DeleteServiceOrderCommand{}, err
	}

	return DeleteServiceOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceOrderCommandIsNotConstructed)
}

func (c DeleteServiceOrderCommand) OrderID() int64 {
	return c.orderID
}

// DeleteAllServiceOrdersCommand wipes every order. It can only be built with an
// explicit confirmation.
type DeleteAllServiceOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewDeleteAllServiceOrdersCommand(confirmed bool) (DeleteAllServiceOrdersCommand, error) {
	if !confirmed {
		return DeleteAllServiceOrdersCommand{}, errs.NewValueIsRequiredError("confirm")
	}

	return DeleteAllServiceOrdersCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAllServiceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllServiceOrdersCommandIsNotConstructed)
}
