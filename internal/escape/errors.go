package escape

import "errors"

// Domain errors for escape-time evaluation.
var (
	// ErrNegativeIterations indicates a negative iteration bound.
	ErrNegativeIterations = errors.New("escape: max iterations must be non-negative")

	// ErrRaggedGrid indicates grid rows of unequal length.
	ErrRaggedGrid = errors.New("escape: grid rows have unequal lengths")
)
