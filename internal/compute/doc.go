// Package compute evaluates escape-time orbits over batches of cells.
//
// The package exposes a [Backend] seam so batch evaluation can be
// swapped out, with a CPU implementation that falls back to a serial
// loop for small batches and splits larger ones across workers:
//
//	backend := compute.GetBackend()
//	times := backend.EscapeTimes(z0, c, maxIterations)
//
// Per-cell arithmetic is identical in both paths; chunking only decides
// which goroutine runs a cell.
package compute
