package geometry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// upperScaleDivisor corrects the magnitude of the upper-surface polynomial.
// The source dataset stores upper coefficients scaled by one million; lower
// coefficients are stored unscaled. Applied to the upper surface only.
const upperScaleDivisor = 1e6

// DecodeProfile evaluates an airfoil record into a closed loop of 2N points
// in unit-chord space. The loop runs from the trailing edge along the upper
// surface to the leading edge, then back along the lower surface, so both
// loop ends sit at the trailing edge. Sample counts below 2 fall back to
// the default.
func DecodeProfile(rec domain.AirfoilRecord, sampleCount int) domain.AirfoilProfile {
	n := sampleCount
	if n < 2 {
		n = domain.DefaultSampleCount
	}

	xs := make([]float64, n)
	floats.Span(xs, 0, 1)

	upper := make([]float64, n)
	lower := make([]float64, n)
	for i, x := range xs {
		upper[i] = evalPolynomial(rec.Upper, x) / upperScaleDivisor
		lower[i] = evalPolynomial(rec.Lower, x)
	}

	profile := domain.AirfoilProfile{
		Name: rec.Name,
		X:    make([]float64, 0, 2*n),
		Y:    make([]float64, 0, 2*n),
	}

	// Upper surface reversed, trailing edge back to the leading edge.
	for i := n - 1; i >= 0; i-- {
		profile.X = append(profile.X, xs[i])
		profile.Y = append(profile.Y, upper[i])
	}
	// Lower surface forward, leading edge out to the trailing edge.
	for i := 0; i < n; i++ {
		profile.X = append(profile.X, xs[i])
		profile.Y = append(profile.Y, lower[i])
	}

	return profile
}

// evalPolynomial evaluates coefficients stored in descending powers, so
// coeffs[i] multiplies x^(len(coeffs)-1-i). Horner form, fixed order.
func evalPolynomial(coeffs []float64, x float64) float64 {
	var sum float64
	for _, c := range coeffs {
		sum = sum*x + c
	}
	return sum
}
