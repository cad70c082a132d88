package escape

import (
	"github.com/dvllgmz/escapelab/internal/compute"
	"github.com/dvllgmz/escapelab/internal/plane"
)

// Intensity is a per-cell brightness array with entries in [0, 1].
// Fast-escaping cells sit near 1; cells that never escaped are exactly 0.
type Intensity [][]float64

func (in Intensity) Rows() int {
	return len(in)
}

func (in Intensity) Cols() int {
	if len(in) == 0 {
		return 0
	}
	return len(in[0])
}

// Time returns the escape time of c under z -> z*z + c starting from
// z = 0: the first index k in [0, maxIterations] with |z| > 2. The
// second return is false when the orbit stays bounded for the whole
// run, which is an ordinary outcome, not an error.
func Time(c complex128, maxIterations int) (int, bool, error) {
	if maxIterations < 0 {
		return 0, false, ErrNegativeIterations
	}

	k := compute.Orbit(0, c, maxIterations)
	if k > maxIterations {
		return 0, false, nil
	}
	return k, true, nil
}

// Mandelbrot renders intensities for a grid of per-cell parameters.
// Every cell iterates from z = 0 with its own c taken from the grid.
func Mandelbrot(cGrid plane.Grid, maxIterations int) (Intensity, error) {
	return batch(cGrid, maxIterations, func(z0, c []complex128, cell complex128, i int) {
		z0[i] = 0
		c[i] = cell
	})
}

// Julia renders intensities for the filled-in Julia set of a fixed
// parameter c: every cell iterates from its own grid point.
func Julia(grid plane.Grid, c complex128, maxIterations int) (Intensity, error) {
	return batch(grid, maxIterations, func(z0, cs []complex128, cell complex128, i int) {
		z0[i] = cell
		cs[i] = c
	})
}

// batch flattens the grid, evaluates escape times on the active
// backend, and normalizes them. fill assigns each cell's initial state
// and parameter, which is the only difference between the Mandelbrot
// and Julia renders.
func batch(grid plane.Grid, maxIterations int, fill func(z0, c []complex128, cell complex128, i int)) (Intensity, error) {
	if maxIterations < 0 {
		return nil, ErrNegativeIterations
	}

	rows := grid.Rows()
	cols := grid.Cols()
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrRaggedGrid
		}
	}

	z0 := make([]complex128, rows*cols)
	c := make([]complex128, rows*cols)
	for i, row := range grid {
		for j, cell := range row {
			fill(z0, c, cell, i*cols+j)
		}
	}

	times := compute.GetBackend().EscapeTimes(z0, c, maxIterations)

	return normalize(times, rows, cols, maxIterations), nil
}

// normalize maps escape times to (maxIterations - t + 1) / (maxIterations + 1).
// The sentinel maxIterations+1 lands exactly on 0. Escape at k=0 only
// happens for |c| > 2, so grids inside the escape radius never produce
// an intensity of 1. The formula is kept exactly as-is; downstream
// color maps rely on its endpoints.
func normalize(times []int, rows, cols, maxIterations int) Intensity {
	denom := float64(maxIterations + 1)

	out := make(Intensity, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = float64(maxIterations-times[i*cols+j]+1) / denom
		}
		out[i] = row
	}
	return out
}
