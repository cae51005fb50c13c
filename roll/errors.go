package roll

import "errors"

// Configuration errors, rejected before any computation starts. Width and
// weight errors surface as window.ErrWidth and window.ErrWeights.
var (
	// ErrMinObs is returned when MinObs is outside [1, Width].
	ErrMinObs = errors.New("roll: min_obs must be between 1 and width")

	// ErrComponents is returned when a principal-component index is outside
	// [1, p] or repeated.
	ErrComponents = errors.New("roll: component indices must be distinct values in [1, p]")

	// ErrDimension is returned when the independent and dependent panels
	// disagree on row count.
	ErrDimension = errors.New("roll: x and y must have the same number of rows")

	// ErrWorkers is returned when a negative worker count is configured.
	ErrWorkers = errors.New("roll: workers must be >= 0")
)
