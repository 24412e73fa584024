package skeleton

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate type the engine is parameterized over. The
// simulation solves for event times with divisions and square roots, so only
// floating-point instantiations are supported.
type Scalar interface {
	constraints.Float
}

// epsilon returns the equality threshold for T. Two positions closer than
// this are considered the same point, and two event times closer than this
// are considered simultaneous.
func epsilon[T Scalar]() T {
	// 1e-8 is below half the float32 ulp at 1, so the sum rounds back to 1
	// in float32 but not in float64.
	if T(1)+T(1e-8) == T(1) {
		return 1e-4
	}
	return 1e-8
}

// crossAxisTolerance rejects collapse-time candidates whose positions still
// disagree on the axis that wasn't solved for. It is deliberately looser than
// epsilon; see collapseMoment.
const crossAxisTolerance = 1e-3

func sqrt[T Scalar](x T) T { return T(math.Sqrt(float64(x))) }

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func inf[T Scalar]() T { return T(math.Inf(1)) }

func isInf[T Scalar](x T) bool { return math.IsInf(float64(x), 0) }

func nearEqual[T Scalar](a, b, eps T) bool { return abs(a-b) <= eps }
