// Package guard provides ConstructorGuard, a marker embedded in value objects
// and commands so that zero values built with a struct literal can be told
// apart from values produced by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it as an
// unexported field and call Validate from the owner's Validate method:
//
//	type Payment struct {
//	    total int
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
