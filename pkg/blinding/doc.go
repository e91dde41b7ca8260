// Package blinding estimates a blinding index for two-arm randomized
// controlled trials from a 2x2 table of treatment-arm guesses.
//
// The index is the difference in the probability of guessing "arm A"
// between the two arms. The confidence interval is Newcombe's hybrid
// score interval (method 10): Wilson score bounds per proportion,
// combined by error propagation, which keeps the interval inside [-1, 1]
// and behaves well for counts near zero. The reported p-value and
// z-value are dual to the interval: z* is the critical value at which
// the relevant one-sided bound crosses zero, found by bisection.
//
// All functions are pure and allocation-light; every call is
// independent, so callers may batch tables across goroutines without
// coordination.
package blinding
