package domain

// SpanStation is one airfoil cross-section placed along the span.
// A lofted wing is an ordered sequence of stations with increasing Y;
// every station carries the same point count and point ordering.
type SpanStation struct {
	// Y is the spanwise coordinate of this station.
	Y float64

	// Chord is the local chord length after taper and clamping.
	Chord float64

	// LeadingEdgeX is the chordwise offset induced by sweep.
	LeadingEdgeX float64

	// Points holds the station's profile loop in model space.
	Points []Vec3
}
