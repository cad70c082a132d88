package plane

import (
	"math"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	grid, err := Generate(complex(-2, 1), complex(1, -1), 0.5)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if grid.Rows() != 4 {
		t.Errorf("expected 4 rows, got %d", grid.Rows())
	}
	if grid.Cols() != 6 {
		t.Errorf("expected 6 cols, got %d", grid.Cols())
	}

	if grid[0][0] != complex(-2, 1) {
		t.Errorf("expected top-left -2+1i, got %v", grid[0][0])
	}

	for i := 0; i < grid.Rows(); i++ {
		for j := 1; j < grid.Cols(); j++ {
			if real(grid[i][j]) <= real(grid[i][j-1]) {
				t.Fatalf("real parts not ascending at row %d col %d", i, j)
			}
		}
	}
	for i := 1; i < grid.Rows(); i++ {
		if imag(grid[i][0]) >= imag(grid[i-1][0]) {
			t.Fatalf("imaginary parts not descending at row %d", i)
		}
	}
}

func TestGenerateHalfOpen(t *testing.T) {
	// End values land exactly on a step boundary and must be excluded.
	grid, err := Generate(complex(0, 1), complex(1, 0), 0.25)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if grid.Cols() != 4 {
		t.Errorf("expected 4 cols, got %d", grid.Cols())
	}
	if grid.Rows() != 4 {
		t.Errorf("expected 4 rows, got %d", grid.Rows())
	}

	last := grid[0][grid.Cols()-1]
	if real(last) >= 1 {
		t.Errorf("right edge should be excluded, got real part %v", real(last))
	}
	bottom := grid[grid.Rows()-1][0]
	if imag(bottom) <= 0 {
		t.Errorf("bottom edge should be excluded, got imaginary part %v", imag(bottom))
	}
}

func TestGenerateInvalidStep(t *testing.T) {
	tests := []struct {
		name string
		step float64
	}{
		{"zero", 0},
		{"negative", -0.5},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(complex(-1, 1), complex(1, -1), tt.step)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGenerateLargeStep(t *testing.T) {
	// A step beyond the span leaves a single value per axis.
	grid, err := Generate(complex(0, 1), complex(1, 0), 5)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if grid.Rows() != 1 || grid.Cols() != 1 {
		t.Errorf("expected 1x1 grid, got %dx%d", grid.Rows(), grid.Cols())
	}
	if grid[0][0] != complex(0, 1) {
		t.Errorf("expected start value, got %v", grid[0][0])
	}
}

func TestGenerateEmptySpan(t *testing.T) {
	grid, err := Generate(complex(1, 1), complex(1, -1), 0.5)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if grid.Cols() != 0 {
		t.Errorf("expected 0 cols for zero real span, got %d", grid.Cols())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(complex(-2, 1.25), complex(0.75, -1.25), 0.1)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, _ := Generate(complex(-2, 1.25), complex(0.75, -1.25), 0.1)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("grids differ at (%d,%d): %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestRegionValidate(t *testing.T) {
	r := Region{TopLeft: complex(-2, 1), BottomRight: complex(1, -1), Step: 0.5}
	if err := r.Validate(); err != nil {
		t.Errorf("valid region rejected: %v", err)
	}

	r.Step = 0
	if err := r.Validate(); err == nil {
		t.Error("expected error for zero step")
	}

	r.Step = math.Inf(1)
	if err := r.Validate(); err == nil {
		t.Error("expected error for infinite step")
	}
}

func TestRegionSpans(t *testing.T) {
	r := Region{TopLeft: complex(-2, 1.25), BottomRight: complex(0.75, -1.25), Step: 0.5}

	if math.Abs(r.Width()-2.75) > 1e-12 {
		t.Errorf("expected width 2.75, got %v", r.Width())
	}
	if math.Abs(r.Height()-2.5) > 1e-12 {
		t.Errorf("expected height 2.5, got %v", r.Height())
	}
}
