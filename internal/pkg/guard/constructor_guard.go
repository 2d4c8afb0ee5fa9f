// Package guard provides the ConstructorGuard used by commands, queries and value
// objects to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a private
// field, set it with NewConstructorGuard in the constructor and check it in Validate:
//
//	type LoginEmployeeCommand struct {
//	    username string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c LoginEmployeeCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginEmployeeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
