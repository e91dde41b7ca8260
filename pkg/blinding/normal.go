package blinding

import "math"

// stdNormalCDF returns Phi(x) for the standard normal distribution.
func stdNormalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// stdNormalQuantile returns the p-th quantile of the standard normal
// distribution. Phi^-1(p) = sqrt(2) * erfinv(2p - 1).
func stdNormalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
