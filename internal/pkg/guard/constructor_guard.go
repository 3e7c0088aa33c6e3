// Package guard holds the constructor guard embedded by commands, queries and
// domain values that must only be built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value
// reports "not constructed", so a struct literal that skipped the constructor
// fails validation.
//
// Example:
//
//	type ListOrdersQuery struct {
//	    now   time.Time
//	    guard guard.ConstructorGuard
//	}
//
//	func NewListOrdersQuery(now time.Time) ListOrdersQuery {
//	    return ListOrdersQuery{now: now, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is the zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
