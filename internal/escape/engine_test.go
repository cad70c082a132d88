package escape

import (
	"math"
	"testing"

	"github.com/dvllgmz/escapelab/internal/plane"
)

func TestTimeNeverEscapes(t *testing.T) {
	for _, n := range []int{0, 1, 50, 1000} {
		_, escaped, err := Time(0, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if escaped {
			t.Errorf("c=0 must not escape within %d iterations", n)
		}
	}
}

func TestTimeImmediateEscape(t *testing.T) {
	tests := []struct {
		c complex128
		n int
	}{
		{2, 0},
		{2, 50},
		{complex(0, 3), 0},
		{complex(-2.5, 0), 10},
	}

	for _, tt := range tests {
		k, escaped, err := Time(tt.c, tt.n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !escaped || k != 0 {
			t.Errorf("Time(%v, %d) = (%d, %v), want (0, true)", tt.c, tt.n, k, escaped)
		}
	}
}

func TestTimeNegativeIterations(t *testing.T) {
	_, _, err := Time(1, -1)
	if err == nil {
		t.Error("expected error for negative max iterations")
	}
}

func TestMandelbrotMatchesScalar(t *testing.T) {
	const maxIter = 50

	grid, err := plane.Generate(complex(-2, 1), complex(1, -1), 0.25)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	in, err := Mandelbrot(grid, maxIter)
	if err != nil {
		t.Fatalf("mandelbrot failed: %v", err)
	}

	for i, row := range grid {
		for j, c := range row {
			// Invert the normalization to recover the escape time.
			got := int(math.Round(float64(maxIter+1) - in[i][j]*float64(maxIter+1)))

			k, escaped, err := Time(c, maxIter)
			if err != nil {
				t.Fatalf("scalar failed: %v", err)
			}
			want := maxIter + 1
			if escaped {
				want = k
			}

			if got != want {
				t.Fatalf("cell (%d,%d) c=%v: batch time %d, scalar time %d", i, j, c, got, want)
			}
		}
	}
}

func TestMandelbrotRange(t *testing.T) {
	grid, err := plane.Generate(complex(-2, 1.25), complex(0.75, -1.25), 0.05)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	in, err := Mandelbrot(grid, 30)
	if err != nil {
		t.Fatalf("mandelbrot failed: %v", err)
	}

	for i, row := range in {
		for j, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("intensity out of range at (%d,%d): %v", i, j, v)
			}
		}
	}
}

func TestMandelbrotOriginIsInterior(t *testing.T) {
	grid := plane.Grid{{0}}

	for _, n := range []int{0, 10, 100} {
		in, err := Mandelbrot(grid, n)
		if err != nil {
			t.Fatalf("mandelbrot failed: %v", err)
		}
		if in[0][0] != 0 {
			t.Errorf("c=0 with %d iterations: expected intensity 0, got %v", n, in[0][0])
		}
	}
}

func TestJuliaSmallStartNeverEscapes(t *testing.T) {
	// With c=0 the orbit of any |z0| <= 1 stays bounded.
	grid := plane.Grid{
		{complex(0.001, 0), complex(0, 0.002)},
		{complex(-0.003, 0.001), complex(0.5, 0.5)},
	}

	in, err := Julia(grid, 0, 60)
	if err != nil {
		t.Fatalf("julia failed: %v", err)
	}

	for i, row := range in {
		for j, v := range row {
			if v != 0 {
				t.Errorf("cell (%d,%d) should not escape, got intensity %v", i, j, v)
			}
		}
	}
}

func TestJuliaEscapingStart(t *testing.T) {
	grid := plane.Grid{{complex(3, 0)}}

	in, err := Julia(grid, 0, 10)
	if err != nil {
		t.Fatalf("julia failed: %v", err)
	}

	// |z0^2| = 9 escapes at the first check: intensity (10-0+1)/11 = 1.
	if in[0][0] != 1 {
		t.Errorf("expected intensity 1 for immediate escape, got %v", in[0][0])
	}
}

func TestBatchNegativeIterations(t *testing.T) {
	grid := plane.Grid{{0}}

	if _, err := Mandelbrot(grid, -1); err == nil {
		t.Error("expected error for negative max iterations")
	}
	if _, err := Julia(grid, 0, -5); err == nil {
		t.Error("expected error for negative max iterations")
	}
}

func TestBatchRaggedGrid(t *testing.T) {
	grid := plane.Grid{{0, 0}, {0}}

	if _, err := Mandelbrot(grid, 10); err == nil {
		t.Error("expected error for ragged grid")
	}
}

func TestBatchEmptyGrid(t *testing.T) {
	in, err := Mandelbrot(plane.Grid{}, 10)
	if err != nil {
		t.Fatalf("empty grid should render: %v", err)
	}
	if in.Rows() != 0 {
		t.Errorf("expected empty intensity, got %d rows", in.Rows())
	}
}

func TestBatchDeterministic(t *testing.T) {
	grid, err := plane.Generate(complex(-1.5, 1), complex(0.5, -1), 0.1)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	a, err := Mandelbrot(grid, 40)
	if err != nil {
		t.Fatalf("mandelbrot failed: %v", err)
	}
	b, _ := Mandelbrot(grid, 40)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("results differ at (%d,%d): %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestGetVariant(t *testing.T) {
	for _, name := range []string{"mandelbrot", "julia"} {
		if _, err := GetVariant(name); err != nil {
			t.Errorf("variant %s should exist: %v", name, err)
		}
	}

	if _, err := GetVariant("burning_ship"); err == nil {
		t.Error("expected error for unknown variant")
	}

	if len(ListVariants()) != 2 {
		t.Errorf("expected 2 variants, got %d", len(ListVariants()))
	}
}

func BenchmarkMandelbrot(b *testing.B) {
	grid, err := plane.Generate(complex(-2, 1.25), complex(0.75, -1.25), 0.01)
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Mandelbrot(grid, 100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJulia(b *testing.B) {
	grid, err := plane.Generate(complex(-1.6, 1.2), complex(1.6, -1.2), 0.01)
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}
	c := complex(-0.123, 0.745)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Julia(grid, c, 100); err != nil {
			b.Fatal(err)
		}
	}
}
