package commands

import (
	"context"
	"errors"
	"time"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/ports"
	"skiservice/internal/pkg/errs"
)

// CreatedServiceOrder carries the values assigned by the server on creation.
type CreatedServiceOrder struct {
	ID        int64
	CreatedAt time.Time
	PickupAt  time.Time
}

// CreateServiceOrderCommandHandler stores a new registration in status Offen.
// The creation date comes from the clock and the pickup date is derived from it.
// An unknown service type is a validation failure of the request.
type CreateServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	clock      ports.Clock
}

func NewCreateServiceOrderCommandHandler(
	uowFactory ServiceOrderUoWFactory,
	clock ports.Clock,
) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateServiceOrderCommand,
) (CreatedServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedServiceOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedServiceOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.ServiceTypeRepository().Get(ctx, cmd.ServiceTypeID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CreatedServiceOrder{}, errs.NewValueIsInvalidErrorWithCause("serviceTypeId", err)
	}
	if err != nil {
		return CreatedServiceOrder{}, err
	}

	o, err := serviceorder.NewOrder(
		cmd.Customer(),
		cmd.Priority(),
		cmd.ServiceTypeID(),
		cmd.Comments(),
		h.clock.Now(),
	)
	if err != nil {
		return CreatedServiceOrder{}, err
	}

	id, err := uow.ServiceOrderRepository().Add(ctx, o)
	if err != nil {
		return CreatedServiceOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedServiceOrder{}, err
	}

	return CreatedServiceOrder{
		ID:        id,
		CreatedAt: o.CreatedAt(),
		PickupAt:  o.PickupAt(),
	}, nil
}
