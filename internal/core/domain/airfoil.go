package domain

// CoefficientCount is the number of polynomial coefficients per surface.
// Coefficients are stored in descending powers: index i multiplies
// x^(CoefficientCount-1-i), so the final coefficient is the constant term.
const CoefficientCount = 31

// AirfoilRecord is one tabulated airfoil: a dataset name plus one
// coefficient set per surface. Records are immutable once loaded.
type AirfoilRecord struct {
	// Name is the dataset identifier, e.g. "2032c".
	Name string

	// Upper holds the upper-surface coefficients, descending powers.
	Upper []float64

	// Lower holds the lower-surface coefficients, descending powers.
	Lower []float64
}

// Complete reports whether both surfaces carry a full coefficient set.
func (r AirfoilRecord) Complete() bool {
	return len(r.Upper) == CoefficientCount && len(r.Lower) == CoefficientCount
}

// AirfoilProfile is a decoded cross-section: a closed loop of 2N points in
// unit-chord space, running from the trailing edge along the upper surface
// to the leading edge, then back along the lower surface. Both ends of the
// loop sit at the trailing edge.
type AirfoilProfile struct {
	// Name is the source airfoil name.
	Name string

	// X holds chordwise coordinates in [0, 1].
	X []float64

	// Y holds thickness coordinates, parallel to X.
	Y []float64
}

// Len returns the number of loop points.
func (p AirfoilProfile) Len() int { return len(p.X) }
