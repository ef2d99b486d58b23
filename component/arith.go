package component

import "github.com/google/uuid"

// Addition outputs the sum of two numbers.
type Addition struct{}

var _ Component = Addition{}

// Info returns the Addition component metadata.
func (Addition) Info() Info {
	return Info{
		Name:        "Addition",
		Nickname:    "Add",
		Description: "Calculates the Sum of 2 numbers",
		Category:    "MyPlugin",
		Subcategory: "Utility",
		ID:          uuid.MustParse("e5c30f80-8393-49f8-bfb1-b6f73d572e76"),
	}
}

// Inputs are two numbers, each defaulting to zero.
func (Addition) Inputs() []Param { return binaryInputs() }

// Outputs is the single sum of the inputs.
func (Addition) Outputs() []Param {
	return []Param{Number("Addition", "Add", "Calculates the sum")}
}

// Solve sets output 0 to the sum of inputs 0 and 1.
func (Addition) Solve(da DataAccess) error {
	x, y, err := binaryOperands(da)
	if err != nil {
		return err
	}
	da.SetNumber(0, x+y)
	return nil
}

// Subtraction outputs the first number minus the second.
type Subtraction struct{}

var _ Component = Subtraction{}

// Info returns the Subtraction component metadata.
func (Subtraction) Info() Info {
	return Info{
		Name:        "Subtraction",
		Nickname:    "Subtract",
		Description: "Calculates the difference of 2 numbers",
		Category:    "MyPlugin",
		Subcategory: "Utility",
		ID:          uuid.MustParse("2B8E979D-5EDF-4AB7-A2C4-7AF2D2C8F34A"),
	}
}

// Inputs are two numbers, each defaulting to zero.
func (Subtraction) Inputs() []Param { return binaryInputs() }

// Outputs is the single difference of the inputs.
func (Subtraction) Outputs() []Param {
	return []Param{Number("Subtraction", "Subtract", "Calculates the difference")}
}

// Solve sets output 0 to the difference of inputs 0 and 1.
func (Subtraction) Solve(da DataAccess) error {
	x, y, err := binaryOperands(da)
	if err != nil {
		return err
	}
	da.SetNumber(0, x-y)
	return nil
}

func binaryInputs() []Param {
	return []Param{
		Number("First Number", "First", "The first Number").WithDefault(0),
		Number("Second Number", "Second", "The Second Number").WithDefault(0),
	}
}

// binaryOperands reads both operands. Unset inputs are an error here;
// defaults are applied by the host binding before Solve is called.
func binaryOperands(da DataAccess) (x, y float64, err error) {
	in := binaryInputs()
	x, ok := da.GetNumber(0)
	if !ok {
		return 0, 0, missing(in[0])
	}
	y, ok = da.GetNumber(1)
	if !ok {
		return 0, 0, missing(in[1])
	}
	return x, y, nil
}
