package component

import (
	"github.com/google/uuid"
	"github.com/soypat/joinery"
)

// FingerJoint generates finger joint curves along an edge.
// Its single output lists the fingers followed by the connectors.
type FingerJoint struct{}

var _ Component = FingerJoint{}

// Info returns the FingerJoint component metadata.
func (FingerJoint) Info() Info {
	return Info{
		Name:        "MyFingerJoint",
		Nickname:    "Finger",
		Description: "GeneratesFingerJoints",
		Category:    "MyPlugin",
		Subcategory: "Joinery",
		ID:          uuid.MustParse("9DBCDA1B-0EFF-4902-86D5-2591D9A5EB40"),
	}
}

// Inputs are the edge line, finger width and offset distance.
// None has a default.
func (FingerJoint) Inputs() []Param {
	return []Param{
		{Name: "Edge", Nickname: "E", Description: "Base edge for the finger", Kind: KindLine},
		Number("FingerWidth", "W", "Width for the finger"),
		Number("OffsetDistance", "D", "Offset for the finger"),
	}
}

// Outputs is a single curve list.
func (FingerJoint) Outputs() []Param {
	return []Param{
		{Name: "Finger joint", Nickname: "FD", Description: "Fingers followed by connectors", Kind: KindCurve, Access: List},
	}
}

// Solve generates the joint with joinery.FingerJoint and publishes
// its curves. Generator errors are returned unchanged.
func (f FingerJoint) Solve(da DataAccess) error {
	in := f.Inputs()
	edge, ok := da.GetLine(0)
	if !ok {
		return missing(in[0])
	}
	width, ok := da.GetNumber(1)
	if !ok {
		return missing(in[1])
	}
	offset, ok := da.GetNumber(2)
	if !ok {
		return missing(in[2])
	}
	joint, err := joinery.FingerJoint(edge, width, offset)
	if err != nil {
		return err
	}
	da.SetCurves(0, joint.Curves())
	return nil
}
