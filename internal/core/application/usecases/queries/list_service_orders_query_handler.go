package queries

import (
	"context"
	"strings"

	"skiservice/internal/core/domain/model/serviceorder"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListServiceOrdersQueryHandler builds the filtered listing with squirrel and runs it
// through the GORM connection. Results are ordered by id.
type ListServiceOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListServiceOrdersQueryHandler(db *gorm.DB) ListServiceOrdersQueryHandler {
	return ListServiceOrdersQueryHandler{db: db}
}

func (h ListServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceOrdersQuery,
) ([]ServiceOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery, args, err := buildListServiceOrdersSQL(query)
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

func buildListServiceOrdersSQL(query ListServiceOrdersQuery) (string, []any, error) {
	builder := selectServiceOrderViews()

	if query.Name() != "" {
		builder = builder.Where("o.customer_name ILIKE ?", "%"+likeEscaper.Replace(query.Name())+"%")
	}
	if query.Priority() != serviceorder.PriorityUnknown {
		builder = builder.Where(sq.Eq{"o.priority": query.Priority().String()})
	}
	if query.Status() != serviceorder.StatusUnknown {
		builder = builder.Where(sq.Eq{"o.status": query.Status().String()})
	}

	return builder.OrderBy("o.id").ToSql()
}
