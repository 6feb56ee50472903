package force

import "math"

// Evaluator samples a monotone-decreasing scalar function at x, returning
// both its value and its derivative (the Newton step's denominator).
type Evaluator func(x float64) (value, derivative float64)

// maxBracketSteps/maxSecantSteps bound the Newton-advance and
// false-position loops so a pathological evaluator (float-resolution
// deadlock) degrades to "best candidate so far" instead of looping
// forever; a well-formed monotone evaluator converges well inside these
// caps.
const (
	maxBracketSteps = 64
	maxSecantSteps  = 64
)

// FindRoot solves eval(x) = 0 for a monotone-decreasing eval, starting
// from x0. It accepts the first x whose |value| <= maxTargetError.
//
// Procedure: a Newton candidate is computed from x0; while its sign has
// not crossed that of the initial value, the Newton step is repeated
// (guaranteed to make progress, since eval is monotone); once a sign
// change brackets the root, the search switches to false-position
// (secant with side-shrinking) until convergence.
func FindRoot(x0 float64, eval Evaluator, maxTargetError float64) (x float64, iterations int) {
	f0, d0 := eval(x0)
	if math.Abs(f0) <= maxTargetError {
		return x0, 0
	}

	curX, curF := x0, f0
	nextX := curX - curF/d0
	nextF, nextD := eval(nextX)
	iterations = 1
	if math.Abs(nextF) <= maxTargetError {
		return nextX, iterations
	}

	initialSign := sign(f0)
	for sign(nextF) == initialSign && iterations < maxBracketSteps {
		curX, curF = nextX, nextF
		advanced := curX - curF/nextD
		if advanced == curX {
			// Float-resolution deadlock: no further progress possible.
			return curX, iterations
		}
		nextX = advanced
		nextF, nextD = eval(nextX)
		iterations++
		if math.Abs(nextF) <= maxTargetError {
			return nextX, iterations
		}
	}

	for i := 0; i < maxSecantSteps; i++ {
		denom := nextF - curF
		if denom == 0 {
			return nextX, iterations
		}
		mid := curX - curF*(nextX-curX)/denom
		if mid == curX || mid == nextX {
			return mid, iterations
		}
		midF, _ := eval(mid)
		iterations++
		if math.Abs(midF) <= maxTargetError {
			return mid, iterations
		}
		if sign(midF) == initialSign {
			curX, curF = mid, midF
		} else {
			nextX, nextF = mid, midF
		}
	}
	return nextX, iterations
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
