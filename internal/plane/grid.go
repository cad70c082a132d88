package plane

import (
	"fmt"
	"math"
)

// Grid is a row-major lattice of sample points in the complex plane.
// Rows descend in imaginary part (top to bottom), columns ascend in
// real part (left to right).
type Grid [][]complex128

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Region is a rectangular window of the complex plane. TopLeft has the
// smaller real part and the larger imaginary part.
type Region struct {
	TopLeft     complex128
	BottomRight complex128
	Step        float64
}

func (r Region) Validate() error {
	if !validStep(r.Step) {
		return fmt.Errorf("step must be positive and finite, got %v", r.Step)
	}
	return nil
}

// Grid samples the region at its step size.
func (r Region) Grid() (Grid, error) {
	return Generate(r.TopLeft, r.BottomRight, r.Step)
}

// Width returns the real-axis span of the region.
func (r Region) Width() float64 {
	return real(r.BottomRight) - real(r.TopLeft)
}

// Height returns the imaginary-axis span of the region.
func (r Region) Height() float64 {
	return imag(r.TopLeft) - imag(r.BottomRight)
}

// Generate builds the sampling lattice between topLeft and bottomRight
// at the given step. Both axes are half-open stepped ranges: the start
// value is included, the end value excluded. Real values ascend from
// topLeft, imaginary values descend. A step larger than the span on an
// axis leaves that axis with a single value; a zero or inverted span
// leaves it empty.
func Generate(topLeft, bottomRight complex128, step float64) (Grid, error) {
	if !validStep(step) {
		return nil, fmt.Errorf("step must be positive and finite, got %v", step)
	}

	cols := rangeLen(real(bottomRight)-real(topLeft), step)
	rows := rangeLen(imag(topLeft)-imag(bottomRight), step)

	grid := make(Grid, rows)
	for i := 0; i < rows; i++ {
		row := make([]complex128, cols)
		im := imag(topLeft) - float64(i)*step
		for j := 0; j < cols; j++ {
			row[j] = complex(real(topLeft)+float64(j)*step, im)
		}
		grid[i] = row
	}

	return grid, nil
}

// validStep rejects NaN, infinite, and non-positive steps. An infinite
// step would make rangeLen yield an empty axis for a positive span
// instead of the single start value the range semantics promise.
func validStep(step float64) bool {
	return !math.IsNaN(step) && !math.IsInf(step, 0) && step > 0
}

// rangeLen is the length of the half-open range [0, span) at the given
// step. Values are computed as start + i*step rather than accumulated,
// so the count must come from the span directly.
func rangeLen(span, step float64) int {
	if span <= 0 {
		return 0
	}
	return int(math.Ceil(span / step))
}
