package solver

import "github.com/vsaulue/Gustave-sub001/vecmath"

// Config is Force1Solver's complete termination contract (spec §5): the
// gravity vector driving every node's weight, the global relative-error
// tolerance, and the iteration cap.
type Config struct {
	G              vecmath.Vec3
	TargetMaxError float64
	MaxIterations  uint64
}

// Validate rejects a non-positive TargetMaxError. G is checked lazily by
// fgraph.Build (ErrZeroGravity) since only that call knows whether G
// normalizes; MaxIterations has no positivity constraint — 0 simply
// returns an immediate non-solved Result.
func (c Config) Validate() error {
	if c.TargetMaxError <= 0 {
		return ErrNonPositiveTargetError
	}
	return nil
}
