// Package servicetyperepo reads the service catalog seeded by the migrations.
package servicetyperepo

import (
	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/core/domain/model/servicetype"
)

type ServiceTypeDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	CostCents int64  `gorm:"not null"`
}

func (ServiceTypeDTO) TableName() string {
	return "service_types"
}

func toDomain(dto ServiceTypeDTO) (*servicetype.ServiceType, error) {
	cost, err := kernel.NewMoney(dto.CostCents)
	if err != nil {
		return nil, err
	}
	return servicetype.RestoreServiceType(dto.ID, dto.Name, cost)
}
