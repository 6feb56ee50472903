package solver

import "errors"

// Sentinel errors for Config validation.
var (
	// ErrNonPositiveTargetError indicates a Config with TargetMaxError <= 0.
	ErrNonPositiveTargetError = errors.New("solver: targetMaxError must be strictly positive")
)
