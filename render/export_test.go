package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/joinery"
	"github.com/soypat/joinery/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func testParts(t testing.TB) []render.Part {
	front, err := joinery.FingerJoint(joinery.NewLine(r3.Vec{}, r3.Vec{X: 100}), 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	side, err := joinery.FingerJoint(joinery.NewLine(r3.Vec{}, r3.Vec{Y: 60}), 12, 3)
	if err != nil {
		t.Fatal(err)
	}
	return []render.Part{{Name: "front", Joint: front}, {Name: "side", Joint: side}}
}

func TestWriteSVG(t *testing.T) {
	parts := testParts(t)
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.Config{}, parts...)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("malformed SVG document:\n%s", out)
	}
	for _, p := range parts {
		if !strings.Contains(out, `<g id="`+p.Name+`">`) {
			t.Errorf("missing group for %s", p.Name)
		}
	}
	// front: 10 fingers + 9 connectors, side: 5 fingers + 4 connectors.
	if got := strings.Count(out, "<line"); got != 28 {
		t.Errorf("got %d lines, want 28", got)
	}
	if got := strings.Count(out, "stroke:#ff0000"); got != 13 {
		t.Errorf("got %d connector lines, want 13", got)
	}
}

func TestWriteSVGPolyline(t *testing.T) {
	parts := testParts(t)[:1]
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.Config{Polyline: true}, parts...)
	if err != nil {
		t.Fatal(err)
	}
	// 20 profile points give 19 segments.
	if got := strings.Count(buf.String(), "<line"); got != 19 {
		t.Errorf("got %d lines, want 19", got)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePDF(&buf, render.Config{}, testParts(t)...)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePNG(&buf, render.Config{}, testParts(t)...)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestCreateDXF(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		cfg      render.Config
		entity   string
		want     int
		wantLyrs []string
	}{
		{render.Config{}, "LINE", 28, []string{render.LayerFingers, render.LayerConnectors}},
		{render.Config{Polyline: true}, "LWPOLYLINE", 2, []string{render.LayerProfile}},
	} {
		path := filepath.Join(dir, test.entity+".dxf")
		err := render.CreateDXF(path, test.cfg, testParts(t)...)
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var n int
		layers := make(map[string]bool)
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == test.entity {
				n++
			}
			layers[line] = true
		}
		if n != test.want {
			t.Errorf("got %d %s entities, want %d", n, test.entity, test.want)
		}
		for _, l := range test.wantLyrs {
			if !layers[l] {
				t.Errorf("layer %q not found", l)
			}
		}
	}
}

func TestRenderNoParts(t *testing.T) {
	var buf bytes.Buffer
	empty := render.Part{Name: "empty"}
	for name, err := range map[string]error{
		"svg": render.WriteSVG(&buf, render.Config{}),
		"pdf": render.WritePDF(&buf, render.Config{}, empty),
		"png": render.WritePNG(&buf, render.Config{}),
		"dxf": render.CreateDXF(filepath.Join(t.TempDir(), "x.dxf"), render.Config{}, empty),
	} {
		if err == nil {
			t.Errorf("%s: expected error for empty input", name)
		}
	}
	if buf.Len() != 0 {
		t.Error("output written for empty input")
	}
}

func TestIsPlotFormat(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png": true, "b.PNG": true, "c.svg": false, "d.dxf": false, "e.pdf": false,
	} {
		if got := render.IsPlotFormat(path); got != want {
			t.Errorf("IsPlotFormat(%q) = %v", path, got)
		}
	}
}
