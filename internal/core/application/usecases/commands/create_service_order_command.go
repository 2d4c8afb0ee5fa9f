package commands

import (
	"errors"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
	"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
)

// CreateServiceOrderCommand is a customer's service registration as submitted.
// Creation and pickup dates are not part of it; they are set by the handler.
//
// Example:
//
//	cmd, err := NewCreateServiceOrderCommand(
//	    "Lukas Meier", "lukas@example.ch", "+41 79 123 45 67", "express", 3, "Kanten schleifen",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	customer      serviceorder.Customer
	priority      serviceorder.Priority
	serviceTypeID int64
	comments      string

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand validates every field and reports all failures joined.
func NewCreateServiceOrderCommand(
	name, email, phone, priority string,
	serviceTypeID int64,
	comments string,
) (CreateServiceOrderCommand, error) {
	cmd := CreateServiceOrderCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(name, email, phone),
		cmd.setPriority(priority),
		cmd.setServiceTypeID(serviceTypeID),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

func (c CreateServiceOrderCommand) Customer() serviceorder.Customer {
	return c.customer
}

func (c CreateServiceOrderCommand) Priority() serviceorder.Priority {
	return c.priority
}

func (c CreateServiceOrderCommand) ServiceTypeID() int64 {
	return c.serviceTypeID
}

func (c CreateServiceOrderCommand) Comments() string {
	return c.comments
}

func (c *CreateServiceOrderCommand) setCustomer(name, email, phone string) error {
	customer, err := serviceorder.NewCustomer(name, email, phone)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateServiceOrderCommand) setPriority(priority string) error {
	p, err := serviceorder.ParsePriority(priority)
	if err != nil {
		return err
	}
	c.priority = p
	return nil
}

func (c *CreateServiceOrderCommand) setServiceTypeID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("serviceTypeId", id, 1, "unbounded")
	}
	c.serviceTypeID = id
	return nil
}
