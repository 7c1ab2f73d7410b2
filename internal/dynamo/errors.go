package dynamo

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for simulation setup.
var (
	// ErrInvalidState indicates a state vector holding NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// Positive returns a ParamError unless v is a finite number greater than zero.
func Positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return &ParamError{Param: name, Value: v, Wrapped: ErrParameterBounds}
	}
	return nil
}

// Finite returns a ParamError if v is NaN or infinite.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Param: name, Value: v, Wrapped: ErrInvalidState}
	}
	return nil
}
