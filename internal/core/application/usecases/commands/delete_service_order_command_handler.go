package commands

import (
	"context"
)

type DeleteServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewDeleteServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) DeleteServiceOrderCommandHandler {
	return DeleteServiceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h *DeleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd DeleteServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ServiceOrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteAllServiceOrdersCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewDeleteAllServiceOrdersCommandHandler(uowFactory ServiceOrderUoWFactory) DeleteAllServiceOrdersCommandHandler {
	return DeleteAllServiceOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of deleted orders.
func (h *DeleteAllServiceOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteAllServiceOrdersCommand,
) (int64, error) {
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

	deleted, err := uow.ServiceOrderRepository().DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
