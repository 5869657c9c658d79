package array

import (
	"errors"
	"fmt"
)

// Common errors. Every *Error matches exactly one of these with errors.Is.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrDomain        = errors.New("domain error")
	ErrNoInverse     = errors.New("no inverse")

	// ErrFillShapeMismatch additionally matches shape mismatches that
	// a caller could retry under a different fill policy.
	ErrFillShapeMismatch = errors.New("shape mismatch (fill eligible)")
)

// Kind classifies runtime errors.
type Kind int

// Error kinds.
const (
	ShapeMismatch Kind = iota
	TypeMismatch
	DomainError
	NoInverse
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape_mismatch"
	case TypeMismatch:
		return "type_mismatch"
	case DomainError:
		return "domain_error"
	case NoInverse:
		return "no_inverse"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case ShapeMismatch:
		return ErrShapeMismatch
	case TypeMismatch:
		return ErrTypeMismatch
	case DomainError:
		return ErrDomain
	case NoInverse:
		return ErrNoInverse
	default:
		return nil
	}
}

// Error is a runtime failure raised by an array operation.
type Error struct {
	Kind         Kind   // Category of the failure
	Message      string // User-facing message, already formatted
	FillEligible bool   // Shape mismatch that a fill value could have repaired
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	if target == ErrFillShapeMismatch {
		return e.Kind == ShapeMismatch && e.FillEligible
	}
	return target != nil && target == e.Kind.sentinel()
}

// Fill marks the error as fill eligible and returns it.
func (e *Error) Fill() *Error {
	e.FillEligible = true
	return e
}

// Errorf builds a runtime error of the given kind. It is the only way the
// engine constructs failures.
func (env *Env) Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
