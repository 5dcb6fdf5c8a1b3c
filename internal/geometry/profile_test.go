package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// coeffs builds a descending-power coefficient set of the dataset width with
// the given trailing values, zero padded at the high powers.
func coeffs(trailing ...float64) []float64 {
	c := make([]float64, domain.CoefficientCount)
	copy(c[domain.CoefficientCount-len(trailing):], trailing)
	return c
}

// TestEvalPolynomial tests descending-power evaluation
func TestEvalPolynomial(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{
			name:   "constant term only",
			coeffs: []float64{4},
			x:      3,
			want:   4,
		},
		{
			name:   "quadratic at two",
			coeffs: []float64{2, 3, 4},
			x:      2,
			want:   18,
		},
		{
			name:   "linear at zero keeps the constant",
			coeffs: []float64{5, 7},
			x:      0,
			want:   7,
		},
		{
			name:   "empty coefficients evaluate to zero",
			coeffs: nil,
			x:      1,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, evalPolynomial(tt.coeffs, tt.x), 1e-12)
		})
	}
}

// TestDecodeProfile_LoopShape tests loop length, ordering and endpoints
func TestDecodeProfile_LoopShape(t *testing.T) {
	rec := domain.AirfoilRecord{
		Name:  "flatplate",
		Upper: coeffs(2e6), // constant 2 before descaling
		Lower: coeffs(0.5),
	}

	profile := DecodeProfile(rec, 5)
	require.Equal(t, 10, profile.Len())
	assert.Equal(t, "flatplate", profile.Name)

	// Upper half runs trailing edge to leading edge.
	assert.InDelta(t, 1.0, profile.X[0], 1e-12)
	assert.InDelta(t, 0.0, profile.X[4], 1e-12)
	// Lower half runs leading edge back out.
	assert.InDelta(t, 0.0, profile.X[5], 1e-12)
	assert.InDelta(t, 1.0, profile.X[9], 1e-12)

	// Upper surface descaled by one million, lower untouched.
	for i := 0; i < 5; i++ {
		assert.InDelta(t, 2.0, profile.Y[i], 1e-12)
	}
	for i := 5; i < 10; i++ {
		assert.InDelta(t, 0.5, profile.Y[i], 1e-12)
	}
}

// TestDecodeProfile_LinearUpper tests sample placement through a linear surface
func TestDecodeProfile_LinearUpper(t *testing.T) {
	rec := domain.AirfoilRecord{
		Name:  "ramp",
		Upper: coeffs(1e6, 0), // y = x before descaling
		Lower: coeffs(0),
	}

	profile := DecodeProfile(rec, 5)

	// Reversed upper: y values descend from 1 at the trailing edge.
	want := []float64{1.0, 0.75, 0.5, 0.25, 0.0}
	for i, w := range want {
		assert.InDelta(t, w, profile.Y[i], 1e-12)
		assert.InDelta(t, w, profile.X[i], 1e-12)
	}
}

// TestDecodeProfile_DefaultSampleCount tests fallback for degenerate counts
func TestDecodeProfile_DefaultSampleCount(t *testing.T) {
	rec := domain.AirfoilRecord{
		Name:  "x",
		Upper: coeffs(0),
		Lower: coeffs(0),
	}

	for _, n := range []int{0, 1, -3} {
		profile := DecodeProfile(rec, n)
		assert.Equal(t, 2*domain.DefaultSampleCount, profile.Len())
	}
}

// TestDecodeProfile_Deterministic tests bit-identical repeated decoding
func TestDecodeProfile_Deterministic(t *testing.T) {
	rec := domain.AirfoilRecord{
		Name:  "2032c",
		Upper: coeffs(3.1e6, -2.5e6, 1.2e6, 9e5),
		Lower: coeffs(-0.04, 0.02, -0.01, 0.001),
	}

	a := DecodeProfile(rec, 120)
	b := DecodeProfile(rec, 120)
	assert.Equal(t, a, b)
}
