package servicetyperepo

import (
	"context"
	"errors"

	"skiservice/internal/core/domain/model/servicetype"
	"skiservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceTypeRepository implements ports.ServiceTypeRepository using GORM.
type GormServiceTypeRepository struct {
	db *gorm.DB
}

func NewGormServiceTypeRepository(db *gorm.DB) *GormServiceTypeRepository {
	return &GormServiceTypeRepository{db: db}
}

func (r *GormServiceTypeRepository) Get(ctx context.Context, id int64) (*servicetype.ServiceType, error) {
	var dto ServiceTypeDTO
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceTypeId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormServiceTypeRepository) GetAll(ctx context.Context) ([]*servicetype.ServiceType, error) {
	var dtos []ServiceTypeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*servicetype.ServiceType, 0, len(dtos))
	for _, dto := range dtos {
		st, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}

	return types, nil
}
