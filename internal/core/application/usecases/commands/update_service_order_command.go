package commands

import (
	"errors"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommentCommandIsNotConstructed = errors.New(
		"UpdateOrderCommentCommand must be created via NewUpdateOrderCommentCommand constructor",
	)
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderCommentCommand replaces the comment of an order. The status is untouched.
type UpdateOrderCommentCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	comment string

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommentCommand(orderID int64, comment string) (UpdateOrderCommentCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return UpdateOrderCommentCommand{}, err
	}

	return UpdateOrderCommentCommand{
		orderID: orderID,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommentCommandIsNotConstructed)
}

func (c UpdateOrderCommentCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommentCommand) Comment() string {
	return c.comment
}

// UpdateOrderStatusCommand sets the status of an order. The comment is untouched.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  serviceorder.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID int64, status string) (UpdateOrderStatusCommand, error) {
	parsed, statusErr := serviceorder.ParseStatus(status)
	if err := errors.Join(validateOrderID(orderID), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() serviceorder.Status {
	return c.status
}

func validateOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", id, 1, "unbounded")
	}
	return nil
}
