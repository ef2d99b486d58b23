// Package joinery generates finger joint profiles for laser cut and
// CNC fabricated box joints.
package joinery

import (
	"fmt"
	"math"

	"github.com/soypat/joinery/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// zAxis is the reference axis the finger offset is taken perpendicular to.
var zAxis = r3.Vec{Z: 1}

// Joint is a finger joint profile generated along an edge.
type Joint struct {
	// Fingers alternate between the positive (even index) and
	// negative (odd index) side of the edge.
	Fingers []Line
	// Connectors join consecutive fingers. There is always one less
	// connector than fingers; the profile ends are left open.
	Connectors []Line
	// Offset is the translation applied to even fingers. Odd fingers
	// are translated by its negation.
	Offset r3.Vec
}

// FingerJoint generates a finger joint profile along edge. Fingers are
// fingerWidth wide, adjusted so a whole number of them tiles the edge,
// and alternate by offsetDistance to either side of the edge in the XY plane.
// No partial geometry is returned on error.
func FingerJoint(edge Line, fingerWidth, offsetDistance float64) (Joint, error) {
	if !d3.Finite(edge.From) || !d3.Finite(edge.To) {
		return Joint{}, fmt.Errorf("edge %v: %w", edge, ErrInvalidParameter)
	}
	if math.IsNaN(offsetDistance) || math.IsInf(offsetDistance, 0) {
		return Joint{}, invalidParam("offsetDistance", offsetDistance, "not finite")
	}
	length := edge.Length()
	if length == 0 {
		return Joint{}, fmt.Errorf("zero length edge: %w", ErrDegenerateGeometry)
	}
	n, err := FingerCount(length, fingerWidth)
	if err != nil {
		return Joint{}, err
	}
	cross := r3.Cross(edge.Direction(), zAxis)
	if r3.Norm(cross) < epsilon {
		return Joint{}, fmt.Errorf("edge %v parallel to Z axis: %w", edge, ErrDegenerateGeometry)
	}
	perp := r3.Scale(offsetDistance, r3.Unit(cross))
	projection := d3.Translation(perp)
	notch := d3.Translation(r3.Scale(-1, perp))

	fingers := make([]Line, n)
	top := make([]r3.Vec, 0, n)
	bottom := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		t1 := float64(i) / float64(n)
		t2 := float64(i+1) / float64(n)
		finger := Line{From: edge.PointAt(t1), To: edge.PointAt(t2)}
		if i%2 == 0 {
			finger = finger.Transform(projection)
		} else {
			finger = finger.Transform(notch)
		}
		fingers[i] = finger
		top = append(top, finger.From)
		bottom = append(bottom, finger.To)
	}
	// Finger i+1 start pairs with finger i end.
	top = top[1:]
	bottom = bottom[:len(bottom)-1]

	connectors := make([]Line, len(top))
	for i := range top {
		connectors[i] = Line{From: top[i], To: bottom[i]}
	}
	return Joint{Fingers: fingers, Connectors: connectors, Offset: projection.Offset()}, nil
}

// GenerateFingers is FingerJoint returning the fingers and connectors directly.
func GenerateFingers(edge Line, fingerWidth, offsetDistance float64) (fingers, connectors []Line, err error) {
	j, err := FingerJoint(edge, fingerWidth, offsetDistance)
	if err != nil {
		return nil, nil, err
	}
	return j.Fingers, j.Connectors, nil
}

// FingerCount returns the number of whole fingers of width fingerWidth
// that fit along length. Widths within a relative tolerance of an exact
// divisor of length count as that divisor.
func FingerCount(length, fingerWidth float64) (int, error) {
	switch {
	case math.IsNaN(length) || math.IsInf(length, 0) || length <= 0:
		return 0, invalidParam("length", length, "must be positive and finite")
	case math.IsNaN(fingerWidth) || math.IsInf(fingerWidth, 0):
		return 0, invalidParam("fingerWidth", fingerWidth, "not finite")
	case fingerWidth <= 0:
		return 0, invalidParam("fingerWidth", fingerWidth, "must be positive")
	case fingerWidth > length*(1+tolerance):
		return 0, invalidParam("fingerWidth", fingerWidth, fmt.Sprintf("exceeds edge length %g", length))
	}
	n := math.Floor(length/fingerWidth + tolerance)
	if n < 1 {
		return 0, invalidParam("fingerWidth", fingerWidth, "no whole finger fits edge")
	}
	if n > MaxFingers {
		return 0, invalidParam("fingerWidth", fingerWidth, fmt.Sprintf("more than %d fingers", MaxFingers))
	}
	return int(n), nil
}

// Width returns the adjusted finger width, that is the distance each
// finger spans along the edge.
func (j Joint) Width() float64 {
	if len(j.Fingers) == 0 {
		return 0
	}
	return j.Fingers[0].Length()
}

// Curves returns the fingers followed by the connectors.
func (j Joint) Curves() []Line {
	curves := make([]Line, 0, len(j.Fingers)+len(j.Connectors))
	curves = append(curves, j.Fingers...)
	return append(curves, j.Connectors...)
}

// Profile returns the joint as an open polyline running along the
// edge: each finger's start and end point in order. Consecutive
// fingers are joined by the corresponding connector.
func (j Joint) Profile() []r3.Vec {
	pts := make([]r3.Vec, 0, 2*len(j.Fingers))
	for _, f := range j.Fingers {
		pts = append(pts, f.From, f.To)
	}
	return pts
}

// Bounds returns the bounding box of the joint's fingers.
// It panics if the joint is empty.
func (j Joint) Bounds() d3.Box {
	return d3.Set(j.Profile()).Bounds()
}
