// Package guard provides ConstructorGuard, used by commands, queries and domain
// objects to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. A zero-value
// struct carries a zero guard and fails Validate.
//
//	type CapacityBootcamp struct {
//	    bootcampID kernel.ID
//	    capacityID kernel.ID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (a CapacityBootcamp) Validate() error {
//	    return a.guard.Validate(ErrCapacityBootcampIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard is called from constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guarded object was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
