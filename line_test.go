package joinery

import (
	"testing"

	"github.com/soypat/joinery/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLinePointAtExtrapolates(t *testing.T) {
	l := Line{From: r3.Vec{X: 1, Y: 1}, To: r3.Vec{X: 3, Y: 5}}
	for _, test := range []struct {
		t    float64
		want r3.Vec
	}{
		{0, r3.Vec{X: 1, Y: 1}},
		{1, r3.Vec{X: 3, Y: 5}},
		{0.5, r3.Vec{X: 2, Y: 3}},
		{-1, r3.Vec{X: -1, Y: -3}},
		{2, r3.Vec{X: 5, Y: 9}},
	} {
		got := l.PointAt(test.t)
		if !d3.EqualWithin(got, test.want, 1e-12) {
			t.Errorf("PointAt(%g) = %v, want %v", test.t, got, test.want)
		}
	}
}

func TestLineDirection(t *testing.T) {
	l := Line{From: r3.Vec{X: 1}, To: r3.Vec{X: 1, Y: 3, Z: 4}}
	if l.Length() != 5 {
		t.Errorf("length %g, want 5", l.Length())
	}
	want := r3.Vec{Y: 0.6, Z: 0.8}
	if !d3.EqualWithin(l.Direction(), want, 1e-12) {
		t.Errorf("direction %v, want %v", l.Direction(), want)
	}
	if (Line{}).Direction() != (r3.Vec{}) {
		t.Error("zero length line should have zero direction")
	}
}

func TestLineTransformMatchesTranslate(t *testing.T) {
	l := Line{From: r3.Vec{X: 1, Y: 2, Z: 3}, To: r3.Vec{X: -4, Y: 5, Z: 0}}
	v := r3.Vec{X: 0.25, Y: -7, Z: 2}
	got := l.Transform(d3.Translation(v))
	if !got.Equals(l.Translate(v), 1e-12) {
		t.Errorf("Transform %v != Translate %v", got, l.Translate(v))
	}
	if l.Reverse().Reverse() != l {
		t.Error("double reverse changed line")
	}
	if !d3.EqualWithin(l.Midpoint(), r3.Vec{X: -1.5, Y: 3.5, Z: 1.5}, 1e-12) {
		t.Errorf("midpoint %v", l.Midpoint())
	}
}
