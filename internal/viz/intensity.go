package viz

import "strings"

// shades orders characters from dark to bright for the ramp renderer.
const shades = " .:-=+*#%@"

// FromIntensity rasterizes an intensity array onto a braille canvas of
// w x h characters. A dot is lit when the sampled cell's intensity is
// at or below the threshold, so set interiors (intensity 0) read as
// solid and fast-escaping surroundings stay dark.
func FromIntensity(in [][]float64, w, h int, threshold float64) *Canvas {
	canvas := NewCanvas(w, h)

	rows := len(in)
	if rows == 0 || len(in[0]) == 0 {
		return canvas
	}
	cols := len(in[0])

	subW := w * 2
	subH := h * 4

	for y := 0; y < subH; y++ {
		i := y * rows / subH
		for x := 0; x < subW; x++ {
			j := x * cols / subW
			if in[i][j] <= threshold {
				canvas.Set(x, y)
			}
		}
	}

	return canvas
}

// ShadeRamp renders an intensity array as ASCII, one character per
// sampled cell. Low intensities map to dense characters so the
// never-escaped set reads as solid against a light background.
func ShadeRamp(in [][]float64, w, h int) string {
	rows := len(in)
	if rows == 0 || len(in[0]) == 0 {
		return ""
	}
	cols := len(in[0])

	var sb strings.Builder
	for y := 0; y < h; y++ {
		i := y * rows / h
		for x := 0; x < w; x++ {
			j := x * cols / w
			level := int((1 - in[i][j]) * float64(len(shades)))
			if level >= len(shades) {
				level = len(shades) - 1
			}
			if level < 0 {
				level = 0
			}
			sb.WriteByte(shades[level])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
