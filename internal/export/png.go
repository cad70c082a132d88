package export

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// WritePNG encodes an intensity array as a 16-bit grayscale PNG, one
// pixel per cell.
func WritePNG(in [][]float64, path string) error {
	rows := len(in)
	cols := 0
	if rows > 0 {
		cols = len(in[0])
	}

	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := in[i][j]
			if math.IsNaN(v) || v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.SetGray16(j, i, color.Gray16{Y: uint16(v * math.MaxUint16)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
