// Package employeerepo persists employee accounts and maps them between the
// employee domain snapshot and the employees table.
package employeerepo

import (
	"skiservice/internal/core/domain/model/employee"
)

// EmployeeDTO is a row of the employees table.
type EmployeeDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Username            string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash        string `gorm:"type:varchar(255);not null"`
	IsLocked            bool   `gorm:"not null;default:false"`
	FailedLoginAttempts int    `gorm:"not null;default:0"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(e employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                  e.ID(),
		Username:            e.Username(),
		PasswordHash:        e.PasswordHash(),
		IsLocked:            e.IsLocked(),
		FailedLoginAttempts: e.FailedLoginAttempts(),
	}
}

func toDomain(dto EmployeeDTO) (employee.Employee, error) {
	return employee.RestoreEmployee(
		dto.ID,
		dto.Username,
		dto.PasswordHash,
		dto.IsLocked,
		dto.FailedLoginAttempts,
	)
}
