// Package serviceorderrepo persists service orders.
package serviceorderrepo

import (
	"time"

	"skiservice/internal/core/domain/model/serviceorder"
)

// ServiceOrderDTO is a row of the service_orders table. Priority and status are
// stored by name. PickupAt is stored for overdue queries but never read back into
// the aggregate, which derives it again.
type ServiceOrderDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName  string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32);not null"`
	Priority      string    `gorm:"type:varchar(16);not null"`
	ServiceTypeID int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	PickupAt      time.Time `gorm:"type:timestamptz;not null"`
	Comments      string    `gorm:"type:text;not null;default:''"`
	Status        string    `gorm:"type:varchar(16);not null"`
}

func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

func fromDomain(o *serviceorder.Order) ServiceOrderDTO {
	customer := o.Customer()
	return ServiceOrderDTO{
		ID:            o.ID(),
		CustomerName:  customer.Name(),
		Email:         customer.Email().String(),
		Phone:         customer.Phone().String(),
		Priority:      o.Priority().String(),
		ServiceTypeID: o.ServiceTypeID(),
		CreatedAt:     o.CreatedAt(),
		PickupAt:      o.PickupAt(),
		Comments:      o.Comments(),
		Status:        o.Status().String(),
	}
}

func toDomain(dto ServiceOrderDTO) (*serviceorder.Order, error) {
	customer, err := serviceorder.NewCustomer(dto.CustomerName, dto.Email, dto.Phone)
	if err != nil {
		return nil, err
	}

	priority, err := serviceorder.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := serviceorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreOrder(
		dto.ID,
		customer,
		priority,
		dto.ServiceTypeID,
		dto.Comments,
		status,
		dto.CreatedAt,
	)
}
