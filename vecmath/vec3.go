package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// zeroThreshold is the minimum magnitude a vector must have to be
// normalized. Below it, Normalize reports ErrZeroVector.
const zeroThreshold = 1e-12

// Vec3 is a 3-D vector of plain float64 components. It wraps gonum's
// r3.Vec so that add/sub/scale/dot/norm reuse a well-tested
// implementation instead of a hand-rolled one.
type Vec3 struct {
	v r3.Vec
}

// NewVec3 builds a Vec3 from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{v: r3.Vec{X: x, Y: y, Z: z}}
}

// X returns the first component.
func (a Vec3) X() float64 { return a.v.X }

// Y returns the second component.
func (a Vec3) Y() float64 { return a.v.Y }

// Z returns the third component.
func (a Vec3) Z() float64 { return a.v.Z }

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{v: r3.Add(a.v, b.v)} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{v: r3.Sub(a.v, b.v)} }

// Scale returns k*a.
func (a Vec3) Scale(k float64) Vec3 { return Vec3{v: r3.Scale(k, a.v)} }

// Div returns a scaled by 1/k.
func (a Vec3) Div(k float64) Vec3 { return Vec3{v: r3.Scale(1/k, a.v)} }

// Dot returns the scalar (inner) product of a and b.
func (a Vec3) Dot(b Vec3) float64 { return r3.Dot(a.v, b.v) }

// Norm returns the Euclidean magnitude of a.
func (a Vec3) Norm() float64 { return r3.Norm(a.v) }

// IsZero reports whether a's magnitude is at or below zeroThreshold.
func (a Vec3) IsZero() bool { return a.Norm() <= zeroThreshold }

// UnitVec3 is a Vec3 known to have unit magnitude. The only way to
// construct one is Normalize, so a UnitVec3 in hand is a proof the
// source vector was not degenerate.
type UnitVec3 struct {
	Vec3
}

// Normalize builds a UnitVec3 from a. It fails with ErrZeroVector when
// a's magnitude is at or below zeroThreshold, so construction doubles as
// the validation step spec.md §3 requires of every normalized vector.
func Normalize(a Vec3) (UnitVec3, error) {
	n := a.Norm()
	if n <= zeroThreshold || math.IsNaN(n) {
		return UnitVec3{}, ErrZeroVector
	}

	return UnitVec3{Vec3: a.Scale(1 / n)}, nil
}
