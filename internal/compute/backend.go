package compute

import "fmt"

// Backend evaluates escape-time orbits over flat slices of cells.
// z0 and c must have equal length; the result holds one escape time
// per cell, with maxIterations+1 standing for "did not escape".
type Backend interface {
	Name() string
	Available() bool
	EscapeTimes(z0, c []complex128, maxIterations int) []int
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = NewCPUBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

// Select resolves a backend by name.
func Select(name string) (Backend, error) {
	switch name {
	case "cpu":
		return NewCPUBackend(), nil
	case "serial":
		return &SerialBackend{}, nil
	}
	return nil, fmt.Errorf("unknown backend: %s (available: cpu, serial)", name)
}
