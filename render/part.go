package render

import (
	"errors"
	"image/color"

	"github.com/soypat/joinery"
	"github.com/soypat/joinery/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
)

// Part is a named joint to be drawn.
type Part struct {
	Name  string
	Joint joinery.Joint
}

// Config controls the appearance of exported drawings. The zero value
// is ready to use.
type Config struct {
	// Margin around the drawn parts in millimetres. Defaults to 5.
	Margin float64
	// StrokeWidth of drawn lines in millimetres. Defaults to 0.1.
	StrokeWidth float64
	// FingerColor and ConnectorColor default to blue and red.
	FingerColor    color.Color
	ConnectorColor color.Color
	// Polyline draws each part as a single open polyline through
	// its fingers instead of separate finger and connector lines.
	Polyline bool
}

var errNoParts = errors.New("no joint geometry to render")

func (c Config) margin() float64 {
	if c.Margin <= 0 {
		return 5
	}
	return c.Margin
}

func (c Config) strokeWidth() float64 {
	if c.StrokeWidth <= 0 {
		return 0.1
	}
	return c.StrokeWidth
}

func (c Config) fingerColor() color.Color {
	if c.FingerColor == nil {
		return color.RGBA{B: 255, A: 255}
	}
	return c.FingerColor
}

func (c Config) connectorColor() color.Color {
	if c.ConnectorColor == nil {
		return color.RGBA{R: 255, A: 255}
	}
	return c.ConnectorColor
}

// bounds returns the XY bounding box of all parts grown by the margin.
func (c Config) bounds(parts []Part) (d3.Box, error) {
	var (
		bb    d3.Box
		found bool
	)
	for _, p := range parts {
		if len(p.Joint.Fingers) == 0 {
			continue
		}
		if !found {
			bb = p.Joint.Bounds()
			found = true
			continue
		}
		bb = bb.Extend(p.Joint.Bounds())
	}
	if !found {
		return d3.Box{}, errNoParts
	}
	return bb.Enlarge(c.margin()), nil
}

// segment is a projected line in drawing coordinates.
type segment struct {
	a, b      r2.Vec
	connector bool
}

// segments projects a part onto the XY plane. With polyline set the
// segments run along the profile in order.
func segments(j joinery.Joint, polyline bool) []segment {
	var segs []segment
	if polyline {
		pts := j.Profile()
		for i := 1; i < len(pts); i++ {
			// Segments ending on an even index are connectors.
			segs = append(segs, segment{a: d3.XY(pts[i-1]), b: d3.XY(pts[i]), connector: i%2 == 0})
		}
		return segs
	}
	for _, f := range j.Fingers {
		segs = append(segs, segment{a: d3.XY(f.From), b: d3.XY(f.To)})
	}
	for _, c := range j.Connectors {
		segs = append(segs, segment{a: d3.XY(c.From), b: d3.XY(c.To), connector: true})
	}
	return segs
}
