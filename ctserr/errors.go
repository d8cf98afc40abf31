// Package ctserr defines the tagged-union error kinds raised across the
// transformation engine (spec §7).
package ctserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which failure mode produced an Error.
type Kind int

const (
	// IllegalCoordinate is raised when a point is too short, or contains a
	// NaN where one is not allowed.
	IllegalCoordinate Kind = iota
	// OutOfExtent is raised when CheckInExtent rejects a point.
	OutOfExtent
	// NonInvertibleOperation is raised when Inverse is requested on an
	// operation that does not support it.
	NonInvertibleOperation
	// TooManyIterations is raised when an iterative operation exceeds its
	// maximum iteration count without converging.
	TooManyIterations
	// CoordinateOperationNotFound is raised when the planner finds no chain
	// linking two CRSes.
	CoordinateOperationNotFound
	// InvalidGridFile is raised when a grid header is inconsistent with its
	// body (e.g. node count != rows*cols).
	InvalidGridFile
	// UnknownUnitQuantity is raised when asked to convert between units of
	// different quantities.
	UnknownUnitQuantity
)

func (k Kind) String() string {
	switch k {
	case IllegalCoordinate:
		return "illegal coordinate"
	case OutOfExtent:
		return "out of extent"
	case NonInvertibleOperation:
		return "non-invertible operation"
	case TooManyIterations:
		return "too many iterations"
	case CoordinateOperationNotFound:
		return "coordinate operation not found"
	case InvalidGridFile:
		return "invalid grid file"
	case UnknownUnitQuantity:
		return "unknown unit quantity"
	default:
		return "unknown error"
	}
}

// Error is the tagged-union error value used throughout the engine. Context
// carries whatever payload is useful for diagnosing the failure (the
// rejected point, the offending datum pair, the grid path, ...).
type Error struct {
	Kind    Kind
	Context string
	cause   error
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given kind with a formatted context string.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind, recording cause via pkg/errors so
// the original stack trace survives.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Context: fmt.Sprintf(format, args...),
		cause:   errors.WithStack(cause),
	}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
