package blinding

import "math"

// interval holds the point estimate and Newcombe bounds at one critical value.
type interval struct {
	est, lower, upper float64
}

// newcombe computes the difference of guess proportions and its hybrid
// score interval (Newcombe method 10) at critical value z.
//
// Wilson bounds are computed for each proportion separately, then
// combined: the lower half-width uses the score variance evaluated at
// l1 and u2, the upper half-width is the Euclidean distance from the
// point estimate to (u1, l2). The result is asymmetric and respects
// the [-1, 1] range of a difference of proportions.
func newcombe(c Counts, z float64) interval {
	m := c.GuessAArmA + c.GuessBArmA
	n := c.GuessAArmB + c.GuessBArmB

	pA := c.GuessAArmA / m
	pB := c.GuessAArmB / n
	est := pA - pB

	l1, u1 := wilsonBounds(c.GuessAArmA, m, z)
	l2, u2 := wilsonBounds(c.GuessAArmB, n, z)

	delta := z * math.Sqrt(l1*(1-l1)/m + u2*(1-u2)/n)
	epsilon := math.Hypot(pA-u1, l2-pB)

	return interval{
		est:   est,
		lower: est - delta,
		upper: est + epsilon,
	}
}
