// Package vecmath provides the small numeric vocabulary the solver and
// scene packages build on: a 3-D vector with a normalize-or-fail
// constructor, and a compression/shear/tensile Stress triple.
//
// Dimensional correctness (mass vs. length vs. force, ...) is an external
// concern: every quantity here is a plain float64 or a vector of them.
package vecmath

import "errors"

// Sentinel errors for vecmath construction failures.
var (
	// ErrZeroVector indicates an attempt to normalize a vector whose
	// magnitude is at or below zeroThreshold.
	ErrZeroVector = errors.New("vecmath: vector magnitude too small to normalize")

	// ErrNegativeStress indicates a Stress component was negative at construction.
	ErrNegativeStress = errors.New("vecmath: stress components must be non-negative")
)
