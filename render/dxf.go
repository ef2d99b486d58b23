package render

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// DXF layer names.
const (
	LayerFingers    = "fingers"
	LayerConnectors = "connectors"
	LayerProfile    = "profile"
)

// CreateDXF writes the parts to a DXF file at path. Fingers and
// connectors are LINE entities on their own layers. With cfg.Polyline
// set each part is instead one LWPOLYLINE on the profile layer, which
// most laser cutter software treats as a single cut.
// Coordinates are projected onto the XY plane.
func CreateDXF(path string, cfg Config, parts ...Part) error {
	if _, err := cfg.bounds(parts); err != nil {
		return err
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	if cfg.Polyline {
		if _, err := d.AddLayer(LayerProfile, color.White, dxf.DefaultLineType, true); err != nil {
			return err
		}
		for _, p := range parts {
			pts := p.Joint.Profile()
			if len(pts) == 0 {
				continue
			}
			lwp := entity.NewLwPolyline(len(pts))
			for i, pt := range pts {
				lwp.Vertices[i] = []float64{pt.X, pt.Y}
			}
			d.AddEntity(lwp)
		}
		return d.SaveAs(path)
	}
	if _, err := d.AddLayer(LayerFingers, color.Blue, dxf.DefaultLineType, false); err != nil {
		return err
	}
	if _, err := d.AddLayer(LayerConnectors, color.Red, dxf.DefaultLineType, false); err != nil {
		return err
	}
	for _, p := range parts {
		for _, s := range segments(p.Joint, false) {
			layer := LayerFingers
			if s.connector {
				layer = LayerConnectors
			}
			if err := d.ChangeLayer(layer); err != nil {
				return err
			}
			if _, err := d.Line(s.a.X, s.a.Y, 0, s.b.X, s.b.Y, 0); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}
