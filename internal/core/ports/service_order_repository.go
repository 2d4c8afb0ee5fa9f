package ports

import (
	"context"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/domain/model/servicetype"
)

// ServiceOrderRepository defines the persistence contract for service orders.
// Filtered listings are served by query handlers, not by this repository.
type ServiceOrderRepository interface {
	// Add persists a new order, assigns the storage id to it and returns the id.
	Add(ctx context.Context, o *serviceorder.Order) (int64, error)

	// Update writes comments and status of an existing order.
	Update(ctx context.Context, o *serviceorder.Order) error

	// GetForUpdate reads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*serviceorder.Order, error)

	// Delete returns errs.ErrObjectNotFound when no order has the id.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every order and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// ServiceTypeRepository reads the service catalog.
type ServiceTypeRepository interface {
	Get(ctx context.Context, id int64) (*servicetype.ServiceType, error)
	GetAll(ctx context.Context) ([]*servicetype.ServiceType, error)
}
