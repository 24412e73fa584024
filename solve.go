package skeleton

import "math"

// solveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.
//
// This function tries to be quite numerically robust. If the equation is
// nearly linear, it will return the root ignoring the quadratic term; the
// other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of x satisfy the
// equation, a single 0 is returned.
func solveQuadratic[T Scalar](c0, c1, c2 T) ([2]T, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if isInf(sc0) || isInf(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !isInf(root) {
			return [2]T{root}, 1
		} else if c0 == 0 && c1 == 0 {
			// Degenerate case
			return [2]T{0}, 1
		} else {
			return [2]T{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 T
	if isInf(arg) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]T{}, 0
		} else if arg == 0 {
			return [2]T{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = T(-0.5 * (float64(sc1) + math.Copysign(math.Sqrt(float64(arg)), float64(sc1))))
	}
	root2 := sc0 / root1
	if !isInf(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]T{root1, root2}, 2
		} else {
			return [2]T{root2, root1}, 2
		}
	} else {
		return [2]T{root1}, 1
	}
}
