package compute

// SerialBackend evaluates every cell on the calling goroutine. It is
// the baseline the chunked CPU backend is benchmarked against.
type SerialBackend struct{}

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }
func (s *SerialBackend) Cleanup()        {}

func (s *SerialBackend) EscapeTimes(z0, c []complex128, maxIterations int) []int {
	times := make([]int, len(c))
	for i := range c {
		times[i] = Orbit(z0[i], c[i], maxIterations)
	}
	return times
}
