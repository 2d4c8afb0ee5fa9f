package commands

import (
	"context"

	"skiservice/internal/core/domain/model/serviceorder"
)

// UpdateOrderCommentCommandHandler changes the comment of a stored order.
type UpdateOrderCommentCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewUpdateOrderCommentCommandHandler(uowFactory ServiceOrderUoWFactory) UpdateOrderCommentCommandHandler {
	return UpdateOrderCommentCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderCommentCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *serviceorder.Order) error {
		o.ChangeComment(cmd.Comment())
		return nil
	})
}

// UpdateOrderStatusCommandHandler changes the status of a stored order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory ServiceOrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *serviceorder.Order) error {
		return o.ChangeStatus(cmd.Status())
	})
}

// updateOrder loads the order with a row lock, applies mutate and writes it back.
func updateOrder(
	ctx context.Context,
	uowFactory ServiceOrderUoWFactory,
	orderID int64,
	mutate func(o *serviceorder.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceOrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(o); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
