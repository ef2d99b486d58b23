// Package jobfile parses text files describing a batch of finger joints.
//
// A job file is a sequence of statements. A unit statement sets the
// default length unit for the joints that follow it (mm unless set).
// Each joint names an edge and the finger parameters for that edge:
//
//	// lid of a 100x60 box
//	unit mm
//	joint front from (0, 0, 0) to (100, 0, 0) width 10 offset 3
//	joint side  from (0, 0) to (0, 60) width 12mm offset 0.125in
//
// Numbers may carry a mm, cm or in suffix which overrides the default
// unit. The Z coordinate of a point may be omitted. All resolved values
// are in millimetres.
package jobfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/soypat/joinery"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	jobLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?(?:mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[(),]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(jobLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// File is the root AST node of a job file.
type File struct {
	Pos        lexer.Position `parser:""`
	Statements []*Statement   `parser:"@@*"`
}

// Statement is a unit or joint statement.
type Statement struct {
	Unit  *UnitStatement  `parser:"  @@"`
	Joint *JointStatement `parser:"| @@"`
}

// UnitStatement sets the default unit for following joints.
type UnitStatement struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"'unit' @Ident"`
}

// JointStatement describes a single finger joint.
type JointStatement struct {
	Pos    lexer.Position `parser:""`
	Name   string         `parser:"'joint' @Ident"`
	From   *Point         `parser:"'from' @@"`
	To     *Point         `parser:"'to' @@"`
	Width  string         `parser:"'width' @Number"`
	Offset string         `parser:"'offset' @Number"`
}

// Point is a parenthesised coordinate triple. Z is optional.
type Point struct {
	Pos lexer.Position `parser:""`
	X   string         `parser:"'(' @Number"`
	Y   string         `parser:"',' @Number"`
	Z   string         `parser:"( ',' @Number )? ')'"`
}

// Job is a resolved joint statement ready for generation.
type Job struct {
	Name   string
	Edge   joinery.Line
	Width  float64
	Offset float64
	Pos    lexer.Position
}

// Generate builds the joint described by the job.
func (j Job) Generate() (joinery.Joint, error) {
	joint, err := joinery.FingerJoint(j.Edge, j.Width, j.Offset)
	if err != nil {
		return joinery.Joint{}, fmt.Errorf("%s: joint %q: %w", j.Pos, j.Name, err)
	}
	return joint, nil
}

// Parse reads a job file from r. name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

// ParseString parses job file source.
func ParseString(name, src string) (*File, error) {
	return fileParser.ParseString(name, src)
}

// Jobs resolves units for every joint statement in file order.
// Joint names must be unique.
func (f *File) Jobs() ([]Job, error) {
	unit := "mm"
	seen := make(map[string]lexer.Position)
	var jobs []Job
	for _, st := range f.Statements {
		switch {
		case st.Unit != nil:
			if _, ok := unitScale[st.Unit.Name]; !ok {
				return nil, fmt.Errorf("%s: unknown unit %q", st.Unit.Pos, st.Unit.Name)
			}
			unit = st.Unit.Name
		case st.Joint != nil:
			js := st.Joint
			if prev, ok := seen[js.Name]; ok {
				return nil, fmt.Errorf("%s: joint %q already defined at %s", js.Pos, js.Name, prev)
			}
			seen[js.Name] = js.Pos
			job, err := js.resolve(unit)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (js *JointStatement) resolve(unit string) (Job, error) {
	from, err := js.From.vec(unit)
	if err != nil {
		return Job{}, err
	}
	to, err := js.To.vec(unit)
	if err != nil {
		return Job{}, err
	}
	width, err := length(js.Width, unit)
	if err != nil {
		return Job{}, fmt.Errorf("%s: width: %w", js.Pos, err)
	}
	offset, err := length(js.Offset, unit)
	if err != nil {
		return Job{}, fmt.Errorf("%s: offset: %w", js.Pos, err)
	}
	return Job{
		Name:   js.Name,
		Edge:   joinery.NewLine(from, to),
		Width:  width,
		Offset: offset,
		Pos:    js.Pos,
	}, nil
}

func (p *Point) vec(unit string) (v r3.Vec, err error) {
	if v.X, err = length(p.X, unit); err != nil {
		return v, fmt.Errorf("%s: x: %w", p.Pos, err)
	}
	if v.Y, err = length(p.Y, unit); err != nil {
		return v, fmt.Errorf("%s: y: %w", p.Pos, err)
	}
	if p.Z == "" {
		return v, nil
	}
	if v.Z, err = length(p.Z, unit); err != nil {
		return v, fmt.Errorf("%s: z: %w", p.Pos, err)
	}
	return v, nil
}

var unitScale = map[string]float64{
	"mm": 1,
	"cm": 10,
	"in": joinery.MillimetresPerInch,
}

// length parses a number with an optional unit suffix and returns it in
// millimetres. Numbers without suffix are in defaultUnit.
func length(s, defaultUnit string) (float64, error) {
	unit := defaultUnit
	for u := range unitScale {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSuffix(s, u)
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v * unitScale[unit], nil
}
