package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// WriteSVG draws the parts as an SVG document sized in millimetres.
// Each part is a group with the part's name as id. The Y axis points up
// as in the model; Z is dropped.
func WriteSVG(w io.Writer, cfg Config, parts ...Part) error {
	bb, err := cfg.bounds(parts)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	size := bb.Size()
	canvas := svg.New(bw)
	canvas.Decimals = 4
	canvas.StartviewUnit(size.X, size.Y, "mm", 0, 0, size.X, size.Y)
	fingerStyle := strokeStyle(cfg.fingerColor(), cfg.strokeWidth())
	connectorStyle := strokeStyle(cfg.connectorColor(), cfg.strokeWidth())
	for i, p := range parts {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("part%d", i)
		}
		canvas.Gid(name)
		for _, s := range segments(p.Joint, cfg.Polyline) {
			style := fingerStyle
			if s.connector {
				style = connectorStyle
			}
			// SVG's Y axis points down.
			canvas.Line(s.a.X-bb.Min.X, bb.Max.Y-s.a.Y, s.b.X-bb.Min.X, bb.Max.Y-s.b.Y, style)
		}
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}

func strokeStyle(c color.Color, width float64) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("fill:none;stroke:#%02x%02x%02x;stroke-width:%g;stroke-linecap:round", r>>8, g>>8, b>>8, width)
}
