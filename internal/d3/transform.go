package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an affine 3D transformation stored as the top three
// rows of a 4x4 row-major matrix. The zero value of Transform is the
// identity transform.
type Transform struct {
	// The diagonal is stored with the identity subtracted, that is
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1
	// so that an identity check is simply
	//  if T == (Transform{})
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
}

// Translation returns a Transform that moves points by v.
func Translation(v r3.Vec) Transform {
	return Transform{}.Translate(v)
}

// Transform applies the Transform to the argument point
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	if t == (Transform{}) {
		return v
	}
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23,
	}
}

// Translate appends a translation by v to the Transform.
func (t Transform) Translate(v r3.Vec) Transform {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Offset returns the translation component of the Transform.
func (t Transform) Offset() r3.Vec {
	return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}
}
