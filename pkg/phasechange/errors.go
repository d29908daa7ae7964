package phasechange

import "errors"

var (
	// ErrInvalidInput is returned when the requested pressure is negative or
	// not a finite number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is returned when a derived slope is zero, which makes
	// the inverse relation undefined.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFiniteResult is returned when an evaluated specific volume is NaN
	// or infinite.
	ErrNonFiniteResult = errors.New("non-finite result")

	// ErrConfiguration is returned when the calibration curve is degenerate
	// and no parameters can be derived from it.
	ErrConfiguration = errors.New("invalid calibration curve")
)
