package employeerepo

import (
	"context"
	"errors"

	"skiservice/internal/core/domain/model/employee"
	"skiservice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Add inserts the employee and returns the generated id. A duplicate username
// is reported as errs.ObjectAlreadyExistsError; the connection must be opened
// with TranslateError for GORM to recognize it.
func (r *GormEmployeeRepository) Add(ctx context.Context, e employee.Employee) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(e)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause("username", e.Username(), err)
		}
		return 0, err
	}

	return dto.ID, nil
}

// Update writes the lock flag and failed-attempt counter.
func (r *GormEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("id = ?", e.ID()).
		Updates(map[string]any{
			"is_locked":             e.IsLocked(),
			"failed_login_attempts": e.FailedLoginAttempts(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employeeId", e.ID())
	}

	return nil
}

// GetByUsernameForUpdate issues SELECT ... FOR UPDATE. Outside of a transaction
// the lock is released as soon as the statement finishes.
func (r *GormEmployeeRepository) GetByUsernameForUpdate(
	ctx context.Context,
	username string,
) (employee.Employee, error) {
	return r.getByUsername(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		username,
	)
}

func (r *GormEmployeeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&EmployeeDTO{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormEmployeeRepository) getByUsername(db *gorm.DB, username string) (employee.Employee, error) {
	var dto EmployeeDTO
	if err := db.Where("username = ?", username).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.Employee{}, errs.NewObjectNotFoundError("username", username)
		}
		return employee.Employee{}, err
	}

	return toDomain(dto)
}
