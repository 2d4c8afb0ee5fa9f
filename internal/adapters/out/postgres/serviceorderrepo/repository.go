package serviceorderrepo

import (
	"context"
	"errors"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceOrderRepository implements ports.ServiceOrderRepository using GORM.
type GormServiceOrderRepository struct {
	db *gorm.DB
}

func NewGormServiceOrderRepository(db *gorm.DB) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{db: db}
}

// Add inserts the order and sets the generated id on it.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewValueIsInvalidErrorWithCause("serviceTypeId", err)
		}
		return 0, err
	}

	aggregate.SetID(dto.ID)
	return dto.ID, nil
}

// Update writes the mutable columns: comments and status.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ServiceOrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"comments": aggregate.Comments(),
			"status":   aggregate.Status().String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	return nil
}

func (r *GormServiceOrderRepository) GetForUpdate(ctx context.Context, id int64) (*serviceorder.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormServiceOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ServiceOrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}

// DeleteAll removes every order. GORM refuses deletes without conditions, so the
// statement is issued with an always-true condition.
func (r *GormServiceOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&ServiceOrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormServiceOrderRepository) get(db *gorm.DB, id int64) (*serviceorder.Order, error) {
	var dto ServiceOrderDTO
	if err := db.Where("id = ?", id).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
