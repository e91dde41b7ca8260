package blinding

import "fmt"

// Root finder parameters. The dual z-value lies in [0, 1000] for any
// non-degenerate table; the boundary functions are monotone in z on
// that bracket, so bisection converges unconditionally once a sign
// change is confirmed.
const (
	rootBracketMax = 1000.0
	rootTolerance  = 1e-12
	rootMaxIters   = 200
)

// branch identifies which boundary equation recovers the dual z-value.
type branch int

const (
	// degenerateZero short-circuits z* = 0 when the estimate sits too
	// close to 0 or to +/-1 for the boundary equations to be stable.
	degenerateZero branch = iota
	// positiveBranch drives the lower bound of the interval to zero.
	positiveBranch
	// negativeBranch drives the upper bound of the interval to zero.
	negativeBranch
)

// selectBranch classifies the estimate against the switch point.
// Exact equality |est| == switchPoint takes a numeric branch: the
// degenerate region is open, the numeric regions are closed.
func selectBranch(est, switchPoint float64) branch {
	abs := est
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < switchPoint || abs > 1-switchPoint:
		return degenerateZero
	case est > 0:
		return positiveBranch
	default:
		return negativeBranch
	}
}

// dualZ finds the critical value z* >= 0 at which the one-sided
// Newcombe bound anchored on the estimate's side crosses zero. The
// boundary equation is the squared-distance form
//
//	L(z) = l1(z)^2 + u2(z)^2 - 2*pA*l1(z) - 2*pB*u2(z) + 2*pA*pB
//
// which equals (pA-l1)^2 + (u2-pB)^2 - est^2, so L(z) = 0 exactly when
// the lower bound passes through zero. The negative branch swaps the
// roles of the two proportions.
func dualZ(c Counts, switchPoint float64) (float64, error) {
	m := c.GuessAArmA + c.GuessBArmA
	n := c.GuessAArmB + c.GuessBArmB
	pA := c.GuessAArmA / m
	pB := c.GuessAArmB / n
	est := pA - pB

	var f func(z float64) float64
	switch selectBranch(est, switchPoint) {
	case degenerateZero:
		return 0, nil
	case positiveBranch:
		f = func(z float64) float64 {
			l1, _ := wilsonBounds(c.GuessAArmA, m, z)
			_, u2 := wilsonBounds(c.GuessAArmB, n, z)
			return l1*l1 + u2*u2 - 2*pA*l1 - 2*pB*u2 + 2*pA*pB
		}
	case negativeBranch:
		f = func(z float64) float64 {
			_, u1 := wilsonBounds(c.GuessAArmA, m, z)
			l2, _ := wilsonBounds(c.GuessAArmB, n, z)
			return l2*l2 + u1*u1 - 2*pB*l2 - 2*pA*u1 + 2*pA*pB
		}
	}
	return bisect(f, 0, rootBracketMax)
}

// bisect finds the root of f in [lo, hi] by interval halving. It
// returns a wrapped ErrNoRoot when f does not change sign over the
// bracket; the caller surfaces that instead of defaulting.
func bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, fmt.Errorf("f(%g) = %g and f(%g) = %g: %w", lo, flo, hi, fhi, ErrNoRoot)
	}

	for i := 0; i < rootMaxIters && hi-lo > rootTolerance; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid > 0) == (fhi > 0) {
			hi, fhi = mid, fmid
		} else {
			lo = mid
		}
	}
	return lo + (hi-lo)/2, nil
}
