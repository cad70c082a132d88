package escape

import (
	"fmt"

	"github.com/dvllgmz/escapelab/internal/plane"
)

// Renderer evaluates one fractal variant over a grid. The Mandelbrot
// variant ignores c; the Julia variant reads it as the shared
// parameter.
type Renderer func(grid plane.Grid, c complex128, maxIterations int) (Intensity, error)

var variants = map[string]Renderer{
	"mandelbrot": func(grid plane.Grid, _ complex128, maxIterations int) (Intensity, error) {
		return Mandelbrot(grid, maxIterations)
	},
	"julia": func(grid plane.Grid, c complex128, maxIterations int) (Intensity, error) {
		return Julia(grid, c, maxIterations)
	},
}

func GetVariant(name string) (Renderer, error) {
	r, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s (available: %v)", name, ListVariants())
	}
	return r, nil
}

func ListVariants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	return names
}
