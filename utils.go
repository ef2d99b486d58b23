package joinery

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
)

const (
	// tolerance is the relative slack allowed when comparing a finger
	// width against the edge length it must tile.
	tolerance = 1e-9
	// epsilon is the smallest cross product norm accepted as a valid
	// perpendicular direction.
	epsilon = 1e-12
)

// MaxFingers is the largest number of fingers a single joint may have.
const MaxFingers = 1 << 20
