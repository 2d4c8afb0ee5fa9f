package queries

import (
	"context"
	"errors"
	"time"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrGetOverdueServiceOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueServiceOrdersQuery must be created via NewGetOverdueServiceOrdersQuery constructor",
)

// GetOverdueServiceOrdersQuery finds orders whose pickup date lies before asOf and
// that are not Abgeschlossen yet.
type GetOverdueServiceOrdersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueServiceOrdersQuery(asOf time.Time) (GetOverdueServiceOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueServiceOrdersQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetOverdueServiceOrdersQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueServiceOrdersQueryIsNotConstructed)
}

func (q GetOverdueServiceOrdersQuery) AsOf() time.Time {
	return q.asOf
}

type GetOverdueServiceOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueServiceOrdersQueryHandler(db *gorm.DB) GetOverdueServiceOrdersQueryHandler {
	return GetOverdueServiceOrdersQueryHandler{db: db}
}

// Handle returns overdue orders, oldest pickup date first.
func (h GetOverdueServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueServiceOrdersQuery,
) ([]ServiceOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery, args, err := selectServiceOrderViews().
		Where(sq.Lt{"o.pickup_at": query.AsOf()}).
		Where(sq.NotEq{"o.status": serviceorder.Completed.String()}).
		OrderBy("o.pickup_at", "o.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ServiceOrderView, 0)
	for rows.Next() {
		v, scanErr := scanServiceOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
