package joinery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a scalar parameter is out of range,
	// not finite, or yields no whole finger along the edge.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateGeometry is returned when the input geometry does not
	// define an offset direction, such as a zero length edge or an edge
	// parallel to the world Z axis.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrMissingInput is returned when a required input was not supplied.
	ErrMissingInput = errors.New("missing input")
)

// ParamError records the parameter that failed validation.
// It unwraps to one of the package's sentinel errors.
type ParamError struct {
	Param string
	Value float64
	Err   error
	msg   string
}

func (e *ParamError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Err)
	}
	return fmt.Sprintf("%s=%g: %v: %s", e.Param, e.Value, e.Err, e.msg)
}

func (e *ParamError) Unwrap() error { return e.Err }

func invalidParam(name string, v float64, msg string) error {
	return &ParamError{Param: name, Value: v, Err: ErrInvalidParameter, msg: msg}
}
