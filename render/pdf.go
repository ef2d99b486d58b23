package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

// WritePDF draws the parts on a single PDF page sized to fit them.
// Units are millimetres; Z is dropped.
func WritePDF(w io.Writer, cfg Config, parts ...Part) error {
	bb, err := cfg.bounds(parts)
	if err != nil {
		return err
	}
	size := bb.Size()
	writer := pdf.New(w, size.X, size.Y, nil)
	c := canvas.New(size.X, size.Y)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeWidth(cfg.strokeWidth())
	for _, p := range parts {
		for _, s := range segments(p.Joint, cfg.Polyline) {
			if s.connector {
				ctx.SetStrokeColor(cfg.connectorColor())
			} else {
				ctx.SetStrokeColor(cfg.fingerColor())
			}
			path := &canvas.Path{}
			path.MoveTo(0, 0)
			path.LineTo(s.b.X-s.a.X, s.b.Y-s.a.Y)
			ctx.DrawPath(s.a.X-bb.Min.X, s.a.Y-bb.Min.Y, path)
		}
	}
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
