package render

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// previewWidth is the width of plot previews. The height follows the
// aspect ratio of the drawn parts.
const previewWidth = 16 * vg.Centimeter

// CreatePlot saves a preview plot of the parts. The image format is
// taken from the file extension (png, svg, pdf, ...).
func CreatePlot(path string, cfg Config, parts ...Part) error {
	p, w, h, err := previewPlot(cfg, parts)
	if err != nil {
		return err
	}
	return p.Save(w, h, path)
}

// WritePNG writes a PNG preview plot of the parts to w.
func WritePNG(w io.Writer, cfg Config, parts ...Part) error {
	p, width, height, err := previewPlot(cfg, parts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// previewPlot draws every part's profile as a polyline on equally
// scaled axes.
func previewPlot(cfg Config, parts []Part) (*plot.Plot, vg.Length, vg.Length, error) {
	bb, err := cfg.bounds(parts)
	if err != nil {
		return nil, 0, 0, err
	}
	p := plot.New()
	p.Title.Text = "Finger joints"
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	for i, part := range parts {
		pts := part.Joint.Profile()
		if len(pts) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j].X = pt.X
			xys[j].Y = pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, 0, 0, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		if part.Name != "" {
			p.Legend.Add(part.Name, line)
		}
	}
	size := bb.Size()
	h := previewWidth * vg.Length(size.Y/size.X)
	h = vg.Length(math.Max(float64(h), float64(4*vg.Centimeter)))
	return p, previewWidth, h, nil
}

// IsPlotFormat reports whether path has an extension only supported
// through the plot preview.
func IsPlotFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".eps":
		return true
	}
	return false
}
