// Command fingerjoint generates finger joint profiles and writes them
// as DXF, SVG, PDF or a PNG preview.
//
// A single edge is described with flags:
//
//	fingerjoint -from 0,0,0 -to 100,0,0 -width 10 -offset 3 -o lid.dxf
//
// A batch of edges is read from a job file (see package jobfile):
//
//	fingerjoint -o box.svg box.joint
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soypat/joinery"
	"github.com/soypat/joinery/jobfile"
	"github.com/soypat/joinery/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fingerjoint: ")
	var (
		from     = flag.String("from", "", "edge start point `x,y[,z]`")
		to       = flag.String("to", "", "edge end point `x,y[,z]`")
		width    = flag.Float64("width", 0, "target finger width")
		offset   = flag.Float64("offset", 0, "finger offset distance from the edge")
		output   = flag.String("o", "joint.dxf", "output `file`; format from extension (dxf, svg, pdf, png)")
		polyline = flag.Bool("polyline", false, "draw each joint as one continuous polyline")
		margin   = flag.Float64("margin", 0, "drawing margin in mm (default 5)")
	)
	flag.Parse()

	var parts []render.Part
	var err error
	switch {
	case flag.NArg() > 1:
		log.Fatal("expected at most one job file argument")
	case flag.NArg() == 1:
		parts, err = jobParts(flag.Arg(0))
	default:
		parts, err = flagPart(*from, *to, *width, *offset)
	}
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range parts {
		log.Printf("%s: %d fingers %.4g wide, %d connectors", p.Name, len(p.Joint.Fingers), p.Joint.Width(), len(p.Joint.Connectors))
	}
	cfg := render.Config{Margin: *margin, Polyline: *polyline}
	if err := write(*output, cfg, parts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *output)
}

func jobParts(path string) ([]render.Part, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	f, err := jobfile.Parse(filepath.Base(path), fp)
	if err != nil {
		return nil, err
	}
	jobs, err := f.Jobs()
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%s: no joints defined", path)
	}
	parts := make([]render.Part, 0, len(jobs))
	for _, job := range jobs {
		joint, err := job.Generate()
		if err != nil {
			return nil, err
		}
		parts = append(parts, render.Part{Name: job.Name, Joint: joint})
	}
	return parts, nil
}

func flagPart(from, to string, width, offset float64) ([]render.Part, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("-from and -to required without a job file: %w", joinery.ErrMissingInput)
	}
	a, err := parseVec(from)
	if err != nil {
		return nil, fmt.Errorf("-from: %w", err)
	}
	b, err := parseVec(to)
	if err != nil {
		return nil, fmt.Errorf("-to: %w", err)
	}
	joint, err := joinery.FingerJoint(joinery.NewLine(a, b), width, offset)
	if err != nil {
		return nil, err
	}
	return []render.Part{{Name: "joint", Joint: joint}}, nil
}

// parseVec parses comma separated coordinates. Z defaults to zero.
func parseVec(s string) (r3.Vec, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return r3.Vec{}, fmt.Errorf("want 2 or 3 coordinates, got %q", s)
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return r3.Vec{}, err
		}
		c[i] = v
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func write(path string, cfg render.Config, parts []render.Part) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".dxf":
		return render.CreateDXF(path, cfg, parts...)
	case ext == ".svg" || ext == ".pdf":
		fp, err := os.Create(path)
		if err != nil {
			return err
		}
		if ext == ".svg" {
			err = render.WriteSVG(fp, cfg, parts...)
		} else {
			err = render.WritePDF(fp, cfg, parts...)
		}
		return errors.Join(err, fp.Close())
	case render.IsPlotFormat(path):
		return render.CreatePlot(path, cfg, parts...)
	}
	return fmt.Errorf("unsupported output format %q", ext)
}
