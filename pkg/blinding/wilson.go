package blinding

import "math"

// wilsonBounds returns the lower and upper Wilson score bounds for a
// binomial proportion with k successes out of n trials at critical
// value z. The bounds solve the score-test quadratic
//
//	(p - k/n)^2 = z^2 * p(1-p)/n
//
// n must be positive. The exact solutions live in [0, 1]; rounding can
// push them out by an ulp at k = 0 or k = n, which would turn the
// variance terms of the difference interval negative, so that dust is
// shaved off.
func wilsonBounds(k, n, z float64) (lower, upper float64) {
	center := (2*k + z*z) / (2 * (n + z*z))
	half := z / (n + z*z) * math.Sqrt(z*z/4 + k*(1-k/n))

	lower = center - half
	upper = center + half
	if lower < 0 {
		lower = 0
	}
	if upper > 1 {
		upper = 1
	}
	return lower, upper
}
