package compute

import (
	"math/cmplx"
	"runtime"
	"sync"
)

// Cells below this count are not worth spawning workers for.
const serialThreshold = 4096

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

// Orbit iterates z -> z*z + c from z0 and returns the first index k in
// [0, maxIterations] at which |z| exceeds 2, or maxIterations+1 if the
// orbit never escapes within the bound. The comparison is strict, so a
// NaN component keeps the cell classified as not escaped.
func Orbit(z0, c complex128, maxIterations int) int {
	z := z0
	for k := 0; k <= maxIterations; k++ {
		z = z*z + c
		if cmplx.Abs(z) > 2 {
			return k
		}
	}
	return maxIterations + 1
}

func (b *CPUBackend) EscapeTimes(z0, c []complex128, maxIterations int) []int {
	n := len(c)
	times := make([]int, n)

	if n < serialThreshold {
		for i := 0; i < n; i++ {
			times[i] = Orbit(z0[i], c[i], maxIterations)
		}
		return times
	}

	ParallelFor(n, b.workers, func(start, end int) {
		for i := start; i < end; i++ {
			times[i] = Orbit(z0[i], c[i], maxIterations)
		}
	})

	return times
}

// ParallelFor splits [0, n) into contiguous chunks and runs fn on each
// from its own goroutine.
func ParallelFor(n, workers int, fn func(start, end int)) {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
