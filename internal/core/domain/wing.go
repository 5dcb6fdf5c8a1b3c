package domain

import "math"

// WingSpec holds the wing-shape parameters for one generation request.
// All linear dimensions share a single consistent unit; SweepDeg is degrees.
type WingSpec struct {
	// RootChord is the chord length at the wing root. Must be positive.
	RootChord float64

	// SemiSpan is the half-span from root to tip. Must be positive.
	SemiSpan float64

	// SweepDeg is the leading-edge sweep angle in degrees, within [-90, 90].
	SweepDeg float64

	// TaperRatio is tip chord divided by root chord. Must be positive.
	TaperRatio float64
}

// Validate checks the parameters for geometric admissibility and returns a
// GeometryError naming the first offending field. NaN values are rejected.
func (s WingSpec) Validate() error {
	if s.RootChord <= 0 || math.IsNaN(s.RootChord) {
		return &GeometryError{Field: "root_chord", Value: s.RootChord}
	}
	if s.SemiSpan <= 0 || math.IsNaN(s.SemiSpan) {
		return &GeometryError{Field: "semi_span", Value: s.SemiSpan}
	}
	if s.TaperRatio <= 0 || math.IsNaN(s.TaperRatio) {
		return &GeometryError{Field: "taper_ratio", Value: s.TaperRatio}
	}
	if !(s.SweepDeg >= -90 && s.SweepDeg <= 90) {
		return &GeometryError{Field: "sweep_angle_deg", Value: s.SweepDeg}
	}
	return nil
}
