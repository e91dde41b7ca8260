package blinding

// Result is the merged output of the interval estimator and the dual
// test: a point estimate of the guess-probability difference, its
// confidence bounds at the configured level, and the two-sided p-value
// with the signed z-value that produced it. Results are value records;
// every call returns an independent one.
type Result struct {
	Estimate float64 `json:"est"`
	LowerCI  float64 `json:"lwr_ci"`
	UpperCI  float64 `json:"upr_ci"`
	PValue   float64 `json:"p_value"`
	ZValue   float64 `json:"z_value"`
}
