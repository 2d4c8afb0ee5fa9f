package queries

import (
	"context"
	"errors"

	"skiservice/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetServiceTypesQueryIsNotConstructed = errors.New(
	"GetServiceTypesQuery must be created via NewGetServiceTypesQuery constructor",
)

// GetServiceTypesQuery lists the service catalog.
type GetServiceTypesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetServiceTypesQuery() GetServiceTypesQuery {
	return GetServiceTypesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetServiceTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceTypesQueryIsNotConstructed)
}

// ServiceTypeView is a catalog entry; CostCents is the price in CHF cents.
type ServiceTypeView struct {
	ID        int64
	Name      string
	CostCents int64
}

type GetServiceTypesQueryHandler struct {
	db *gorm.DB
}

func NewGetServiceTypesQueryHandler(db *gorm.DB) GetServiceTypesQueryHandler {
	return GetServiceTypesQueryHandler{db: db}
}

func (h GetServiceTypesQueryHandler) Handle(ctx context.Context, query GetServiceTypesQuery) ([]ServiceTypeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery, args, err := psql.
		Select("id", "name", "cost_cents").
		From("service_types").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	types := make([]ServiceTypeView, 0)
	if err = h.db.WithContext(ctx).Raw(sqlQuery, args...).Scan(&types).Error; err != nil {
		return nil, err
	}

	return types, nil
}
