package blinding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, stdNormalCDF(0), 1e-15)
	assert.InDelta(t, 0.975, stdNormalCDF(1.959964), 1e-6)
	assert.InDelta(t, 0.025, stdNormalCDF(-1.959964), 1e-6)
}

func TestStdNormalQuantile(t *testing.T) {
	tests := []struct {
		p, z float64
	}{
		{0.90, 1.281552},
		{0.95, 1.644854},
		{0.975, 1.959964},
		{0.995, 2.575829},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.z, stdNormalQuantile(tt.p), 1e-5, "quantile at %v", tt.p)
	}
}

func TestStdNormalQuantile_Extremes(t *testing.T) {
	assert.True(t, math.IsInf(stdNormalQuantile(0), -1))
	assert.True(t, math.IsInf(stdNormalQuantile(1), 1))
}

func TestStdNormal_RoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.2, 0.5, 0.8, 0.99} {
		assert.InDelta(t, p, stdNormalCDF(stdNormalQuantile(p)), 1e-12)
	}
}
