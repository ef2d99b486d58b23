package component

import (
	"fmt"

	"github.com/soypat/joinery"
)

// DataAccess moves values between the host's data graph and a component.
// Getters return false when the input is unset.
type DataAccess interface {
	GetNumber(i int) (float64, bool)
	GetLine(i int) (joinery.Line, bool)
	SetNumber(i int, v float64)
	SetCurves(i int, curves []joinery.Line)
}

// Values is an in-memory DataAccess. Inputs holds one value per input
// parameter; a nil entry or a short slice leaves the input unset.
// Supported value types are float64 and joinery.Line.
type Values struct {
	Inputs  []any
	Outputs []any
}

var _ DataAccess = (*Values)(nil)

// GetNumber returns the i'th input if it is a number.
func (v *Values) GetNumber(i int) (float64, bool) {
	if i < 0 || i >= len(v.Inputs) {
		return 0, false
	}
	f, ok := v.Inputs[i].(float64)
	return f, ok
}

// GetLine returns the i'th input if it is a line.
func (v *Values) GetLine(i int) (joinery.Line, bool) {
	if i < 0 || i >= len(v.Inputs) {
		return joinery.Line{}, false
	}
	l, ok := v.Inputs[i].(joinery.Line)
	return l, ok
}

// SetNumber stores a number output.
func (v *Values) SetNumber(i int, f float64) { v.set(i, f) }

// SetCurves stores a list of curves output.
func (v *Values) SetCurves(i int, curves []joinery.Line) { v.set(i, curves) }

func (v *Values) set(i int, x any) {
	for len(v.Outputs) <= i {
		v.Outputs = append(v.Outputs, nil)
	}
	v.Outputs[i] = x
}

// Number returns the i'th output as a number.
func (v *Values) Number(i int) (float64, bool) {
	if i < 0 || i >= len(v.Outputs) {
		return 0, false
	}
	f, ok := v.Outputs[i].(float64)
	return f, ok
}

// Curves returns the i'th output as a list of curves.
func (v *Values) Curves(i int) ([]joinery.Line, bool) {
	if i < 0 || i >= len(v.Outputs) {
		return nil, false
	}
	c, ok := v.Outputs[i].([]joinery.Line)
	return c, ok
}

// Run checks the inputs in v against c's registered parameters,
// substitutes registered defaults for unset inputs and solves c.
func Run(c Component, v *Values) error {
	params := c.Inputs()
	for i, x := range v.Inputs {
		if x == nil {
			continue
		}
		if i >= len(params) {
			return fmt.Errorf("%s: input %d not registered", c.Info().Name, i)
		}
		if !kindOf(x, params[i].Kind) {
			return fmt.Errorf("%s: input %q got %T, want %s: %w", c.Info().Name, params[i].Name, x, params[i].Kind, ErrWrongKind)
		}
	}
	err := c.Solve(defaulted{DataAccess: v, params: params})
	if err != nil {
		return fmt.Errorf("%s: %w", c.Info().Name, err)
	}
	return nil
}

func kindOf(x any, k Kind) bool {
	switch x.(type) {
	case float64:
		return k == KindNumber
	case joinery.Line:
		return k == KindLine || k == KindCurve
	}
	return false
}

// defaulted substitutes registered defaults for unset number inputs.
type defaulted struct {
	DataAccess
	params []Param
}

func (d defaulted) GetNumber(i int) (float64, bool) {
	f, ok := d.DataAccess.GetNumber(i)
	if ok || i < 0 || i >= len(d.params) || d.params[i].Default == nil {
		return f, ok
	}
	return *d.params[i].Default, true
}
