// Package component adapts the joinery functions to a visual programming
// host. A host registers a component's parameters, feeds input values
// through a DataAccess and reads the solved outputs back.
package component

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/soypat/joinery"
)

var (
	// ErrMissingInput is returned when a required input has no value
	// and no registered default.
	ErrMissingInput = joinery.ErrMissingInput
	// ErrWrongKind is returned when an input value does not match
	// the kind its parameter was registered with.
	ErrWrongKind = errors.New("wrong input kind")
)

// Info identifies a component to the host.
type Info struct {
	Name        string
	Nickname    string
	Description string
	// Category is the host tab the component is listed under and
	// Subcategory the panel within that tab.
	Category    string
	Subcategory string
	// ID must never change once released; saved documents refer to
	// components by it.
	ID uuid.UUID
}

// Kind is the data type carried by a parameter.
type Kind int

// Parameter kinds.
const (
	KindNumber Kind = iota // float64
	KindLine               // joinery.Line
	KindCurve              // []joinery.Line
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLine:
		return "line"
	case KindCurve:
		return "curve"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Access is how many values a parameter carries per solve.
type Access int

const (
	Item Access = iota // one value
	List               // a slice of values
)

func (a Access) String() string {
	if a == List {
		return "list"
	}
	return "item"
}

// Param describes one input or output of a component.
type Param struct {
	Name        string
	Nickname    string
	Description string
	Kind        Kind
	Access      Access
	// Default is substituted for an unset input. Nil means the input
	// is required.
	Default *float64
}

// Number returns an item access number parameter.
func Number(name, nickname, description string) Param {
	return Param{Name: name, Nickname: nickname, Description: description, Kind: KindNumber}
}

// WithDefault returns the parameter with a default value registered.
func (p Param) WithDefault(v float64) Param {
	p.Default = &v
	return p
}

// Component is a unit the host can place, wire up and solve.
type Component interface {
	Info() Info
	Inputs() []Param
	Outputs() []Param
	// Solve reads inputs from da and writes the outputs to it.
	Solve(da DataAccess) error
}

func missing(p Param) error {
	return fmt.Errorf("input %q (%s): %w", p.Name, p.Nickname, ErrMissingInput)
}
