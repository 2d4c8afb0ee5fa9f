package employee

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

const (
	// MaxFailedLoginAttempts is the number of consecutive failures that locks an account.
	MaxFailedLoginAttempts = 3

	UsernameMaxLength = 100
)

// ErrEmployeeIsNotConstructed is returned when an Employee was not created through
// NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee")

// Employee is an immutable snapshot of one employee record.
//
// Invariants:
//   - username is non-empty and at most UsernameMaxLength characters
//   - passwordHash is non-empty; the plain password is never held
//   - failedLoginAttempts is never negative
//   - failedLoginAttempts >= MaxFailedLoginAttempts implies isLocked
type Employee struct {
	id                  int64
	username            string
	passwordHash        string
	isLocked            bool
	failedLoginAttempts int
	guard               guard.ConstructorGuard
}

// NewEmployee creates an unsaved, unlocked employee with no failed attempts.
// The identifier is assigned by storage; see WithID.
func NewEmployee(username string, passwordHash string) (Employee, error) {
	e := Employee{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setUsername(username),
		e.setPasswordHash(passwordHash),
	); err != nil {
		return Employee{}, err
	}

	return e, nil
}

// RestoreEmployee rebuilds a snapshot from persisted fields and checks the lock invariant.
func RestoreEmployee(
	id int64,
	username string,
	passwordHash string,
	isLocked bool,
	failedLoginAttempts int,
) (Employee, error) {
	e, err := NewEmployee(username, passwordHash)
	if err != nil {
		return Employee{}, err
	}

	if id <= 0 {
		return Employee{}, errs.NewValueIsOutOfRangeError("id", id, 1, "unbounded")
	}
	if failedLoginAttempts < 0 {
		return Employee{}, errs.NewValueIsOutOfRangeError("failedLoginAttempts", failedLoginAttempts, 0, "unbounded")
	}
	if failedLoginAttempts >= MaxFailedLoginAttempts && !isLocked {
		return Employee{}, errs.NewValueIsInvalidErrorWithCause(
			"isLocked",
			fmt.Errorf("%d failed attempts require a locked account", failedLoginAttempts),
		)
	}

	e.id = id
	e.isLocked = isLocked
	e.failedLoginAttempts = failedLoginAttempts
	return e, nil
}

func (e Employee) Validate() error {
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// WithID returns a copy carrying the storage-assigned identifier.
func (e Employee) WithID(id int64) Employee {
	e.id = id
	return e
}

func (e Employee) ID() int64 {
	return e.id
}

func (e Employee) Username() string {
	return e.username
}

func (e Employee) PasswordHash() string {
	return e.passwordHash
}

func (e Employee) IsLocked() bool {
	return e.isLocked
}

func (e Employee) FailedLoginAttempts() int {
	return e.failedLoginAttempts
}

// Changed reports whether other differs from e in any persisted lock field.
func (e Employee) Changed(other Employee) bool {
	return e.isLocked != other.isLocked || e.failedLoginAttempts != other.failedLoginAttempts
}

func (e *Employee) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > UsernameMaxLength {
		return errs.NewValueIsOutOfRangeError("username length", n, 1, UsernameMaxLength)
	}
	e.username = username
	return nil
}

func (e *Employee) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	e.passwordHash = passwordHash
	return nil
}
