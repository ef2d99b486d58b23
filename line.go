package joinery

import (
	"fmt"

	"github.com/soypat/joinery/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Line is a straight segment from a start point to an end point.
type Line struct {
	From r3.Vec
	To   r3.Vec
}

// NewLine returns the Line from a to b.
func NewLine(a, b r3.Vec) Line {
	return Line{From: a, To: b}
}

// Length returns the Euclidean distance between the line's endpoints.
func (l Line) Length() float64 {
	return r3.Norm(r3.Sub(l.To, l.From))
}

// Direction returns the unit vector pointing from From to To.
// A zero length line has a zero direction.
func (l Line) Direction() r3.Vec {
	d := r3.Sub(l.To, l.From)
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, d)
}

// PointAt returns the point at normalized parameter t along the line.
// t=0 is From and t=1 is To. t is not clamped.
func (l Line) PointAt(t float64) r3.Vec {
	return d3.Lerp(l.From, l.To, t)
}

// Midpoint returns PointAt(0.5).
func (l Line) Midpoint() r3.Vec { return l.PointAt(0.5) }

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line { return Line{From: l.To, To: l.From} }

// Translate returns the line moved by v.
func (l Line) Translate(v r3.Vec) Line {
	return Line{From: r3.Add(l.From, v), To: r3.Add(l.To, v)}
}

// Transform applies t to both endpoints.
func (l Line) Transform(t d3.Transform) Line {
	return Line{From: t.Transform(l.From), To: t.Transform(l.To)}
}

// Equals tests whether both endpoints lie within tol of b's.
func (l Line) Equals(b Line, tol float64) bool {
	return d3.EqualWithin(l.From, b.From, tol) && d3.EqualWithin(l.To, b.To, tol)
}

func (l Line) String() string {
	return fmt.Sprintf("(%g,%g,%g)->(%g,%g,%g)", l.From.X, l.From.Y, l.From.Z, l.To.X, l.To.Y, l.To.Z)
}
