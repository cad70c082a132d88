// Package escape runs the escape-time iteration z -> z*z + c and
// normalizes the results into [0, 1] intensity arrays.
//
// The Mandelbrot and Julia renders share one iteration law and differ
// only in which of the start value and parameter varies per cell:
//
//	in, _ := escape.Mandelbrot(grid, 50)  // z0 = 0, c per cell
//	in, _ = escape.Julia(grid, c, 50)     // z0 per cell, c fixed
//
// A cell's orbit stops at its first index with |z| > 2; never-escaped
// cells normalize to intensity exactly 0.
package escape
