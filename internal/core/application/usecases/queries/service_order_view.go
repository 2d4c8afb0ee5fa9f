package queries

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ServiceOrderView is the read model of a service order.
type ServiceOrderView struct {
	ID              int64
	CustomerName    string
	Email           string
	Phone           string
	Priority        string
	ServiceTypeID   int64
	ServiceTypeName string
	CreatedAt       time.Time
	PickupAt        time.Time
	Comments        string
	Status          string
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectServiceOrderViews is the shared projection of ServiceOrderView; scanServiceOrderView
// reads its columns in the same order.
func selectServiceOrderViews() sq.SelectBuilder {
	return psql.
		Select(
			"o.id",
			"o.customer_name",
			"o.email",
			"o.phone",
			"o.priority",
			"o.service_type_id",
			"t.name",
			"o.created_at",
			"o.pickup_at",
			"o.comments",
			"o.status",
		).
		From("service_orders o").
		InnerJoin("service_types t ON t.id = o.service_type_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceOrderView(row rowScanner) (ServiceOrderView, error) {
	var v ServiceOrderView
	err := row.Scan(
		&v.ID,
		&v.CustomerName,
		&v.Email,
		&v.Phone,
		&v.Priority,
		&v.ServiceTypeID,
		&v.ServiceTypeName,
		&v.CreatedAt,
		&v.PickupAt,
		&v.Comments,
		&v.Status,
	)
	if err != nil {
		return ServiceOrderView{}, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.PickupAt = v.PickupAt.UTC()
	return v, nil
}
