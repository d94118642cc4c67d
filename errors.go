package rbez

import "errors"

// Errors returned by the operations of this package. They are always wrapped
// with details about the offending input; use [errors.Is] to test for them.
var (
	// ErrInvalidShape is returned when inputs have inconsistent sizes, such as
	// a weight vector whose length differs from the number of control points.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrDegreeTooLow is returned when a curve has too few control points for
	// the requested degree change.
	ErrDegreeTooLow = errors.New("degree too low")
	// ErrNonPositiveWeight is returned when a weight is zero, negative, infinite
	// or NaN.
	ErrNonPositiveWeight = errors.New("weight must be positive")
	// ErrIndexOutOfRange is returned when a trace or split index doesn't
	// refer to one of the parameter samples.
	ErrIndexOutOfRange = errors.New("index out of range")
)
