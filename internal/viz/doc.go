// Package viz renders intensity arrays for the terminal.
//
// Two renderers are provided:
//
//   - [FromIntensity]: braille canvas, 2x4 dots per character
//   - [ShadeRamp]: one ASCII shade character per sampled cell
//
// Both downsample by integer index mapping, so any intensity array fits
// any canvas size.
package viz
