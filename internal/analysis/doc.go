// Package analysis derives scalar diagnostics from intensity arrays.
//
// The diagnostics are cheap summaries for stored runs and terminal
// plots:
//
//   - [Histogram]: intensity distribution for plotting
//   - [InteriorFraction]: share of never-escaped cells
//   - [EstimateArea]: cell-counting area estimate of the set
//
// For the full Mandelbrot view the area estimate converges toward the
// known ~1.506 as the step shrinks and the iteration bound grows.
package analysis
