package blinding

import "math"

// Counts is the 2x2 table of (guessed arm, true arm) pairs. The first
// index in the name is the guess, the second the true assignment:
// GuessAArmB counts subjects in arm B who guessed they were in arm A.
// Each arm must contain at least one subject.
type Counts struct {
	GuessAArmA float64 // n_AA: arm A, guessed A
	GuessBArmA float64 // n_BA: arm A, guessed B
	GuessAArmB float64 // n_AB: arm B, guessed A
	GuessBArmB float64 // n_BB: arm B, guessed B
}

// CountsFromTable converts a 2x2 table to Counts. Rows are guesses,
// columns are true arms: t[0][0] = n_AA, t[1][0] = n_BA,
// t[0][1] = n_AB, t[1][1] = n_BB.
func CountsFromTable(t [2][2]float64) Counts {
	return Counts{
		GuessAArmA: t[0][0],
		GuessBArmA: t[1][0],
		GuessAArmB: t[0][1],
		GuessBArmB: t[1][1],
	}
}

// CountsFromInts converts four integer counts to Counts.
func CountsFromInts(nAA, nBA, nAB, nBB int) Counts {
	return Counts{
		GuessAArmA: float64(nAA),
		GuessBArmA: float64(nBA),
		GuessAArmB: float64(nAB),
		GuessBArmB: float64(nBB),
	}
}

// Params tunes the estimation.
type Params struct {
	// SwitchPoint is the threshold on |est| below which (or within
	// SwitchPoint of +/-1, beyond which) the dual z-value is taken as
	// zero instead of root-found. Must be in [0, 1].
	SwitchPoint float64
	// ConfLevel is the two-sided confidence level of the reported
	// interval. Must be in [0, 1].
	ConfLevel float64
}

// DefaultParams returns the standard settings: a near-machine-epsilon
// switch point and a 95% confidence level.
func DefaultParams() Params {
	return Params{
		SwitchPoint: 1e-12,
		ConfLevel:   0.95,
	}
}

// z975 is the critical value backing the default 95% interval,
// computed once at package initialization.
var z975 = stdNormalQuantile(0.975)

// Compute estimates the blinding index for the given table.
//
// It validates the table and parameters, computes the Newcombe interval
// at the critical value implied by p.ConfLevel, and derives the dual
// p-value and z-value by root-finding on the boundary equations.
// Validation failures and a failed root bracket are reported as wrapped
// sentinel errors; no partial results are returned.
func Compute(c Counts, p Params) (*Result, error) {
	if err := validate(c, p); err != nil {
		return nil, err
	}

	zCrit := z975
	if p.ConfLevel != 0.95 {
		zCrit = stdNormalQuantile(1 - (1-p.ConfLevel)/2)
	}
	iv := newcombe(c, zCrit)

	zStar, err := dualZ(c, p.SwitchPoint)
	if err != nil {
		return nil, err
	}

	return &Result{
		Estimate: iv.est,
		LowerCI:  iv.lower,
		UpperCI:  iv.upper,
		PValue:   2 * (1 - stdNormalCDF(zStar)),
		ZValue:   signOf(iv.est) * zStar,
	}, nil
}

func validate(c Counts, p Params) error {
	counts := []struct {
		name  string
		value float64
	}{
		{"n_AA", c.GuessAArmA},
		{"n_BA", c.GuessBArmA},
		{"n_AB", c.GuessAArmB},
		{"n_BB", c.GuessBArmB},
	}
	for _, ct := range counts {
		if math.IsNaN(ct.value) || math.IsInf(ct.value, 0) {
			return invalidInput(ErrNonFiniteCount, ct.name, ct.value)
		}
		if ct.value < 0 {
			return invalidInput(ErrNegativeCount, ct.name, ct.value)
		}
	}
	if c.GuessAArmA+c.GuessBArmA == 0 {
		return invalidInput(ErrEmptyArm, "n_AA+n_BA", 0)
	}
	if c.GuessAArmB+c.GuessBArmB == 0 {
		return invalidInput(ErrEmptyArm, "n_AB+n_BB", 0)
	}
	if p.SwitchPoint < 0 || p.SwitchPoint > 1 || math.IsNaN(p.SwitchPoint) {
		return invalidInput(ErrParamOutOfRange, "switch_point", p.SwitchPoint)
	}
	if p.ConfLevel < 0 || p.ConfLevel > 1 || math.IsNaN(p.ConfLevel) {
		return invalidInput(ErrParamOutOfRange, "conf_level", p.ConfLevel)
	}
	return nil
}

func signOf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
