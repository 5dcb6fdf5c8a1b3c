package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// Loft places airfoil cross-sections along the right half span and mirrors
// every station about the root plane, returning 2S stations ordered by
// increasing spanwise coordinate. Mirrored stations reuse the chord, sweep
// offset and point ordering of their source station, so opposite stations
// correspond point for point. The root station appears twice; the later
// cleanup pass collapses the coincident ring.
func Loft(profile domain.AirfoilProfile, spec domain.WingSpec, opts domain.GenerateOptions) []domain.SpanStation {
	o := opts.Normalised()
	count := o.StationCount

	ys := make([]float64, count)
	if count > 1 {
		floats.Span(ys, 0, spec.SemiSpan)
	}

	sweepTan := math.Tan(spec.SweepDeg * math.Pi / 180)

	right := make([]domain.SpanStation, 0, count)
	for _, y := range ys {
		right = append(right, buildStation(profile, spec, o.ThicknessFactor, y, sweepTan))
	}

	stations := make([]domain.SpanStation, 0, 2*count)
	for i := count - 1; i >= 0; i-- {
		stations = append(stations, mirrorStation(right[i]))
	}
	stations = append(stations, right...)

	return stations
}

// buildStation scales and places the profile loop at one spanwise position.
func buildStation(profile domain.AirfoilProfile, spec domain.WingSpec, thickness, y, sweepTan float64) domain.SpanStation {
	chord := spec.RootChord * (1 - (1-spec.TaperRatio)*(math.Abs(y)/spec.SemiSpan))
	if chord < domain.MinChord {
		chord = domain.MinChord
	}
	leadingEdgeX := math.Abs(y) * sweepTan

	points := make([]domain.Vec3, profile.Len())
	for i := range points {
		points[i] = domain.Vec3{
			X: profile.X[i]*chord + leadingEdgeX,
			Y: y,
			Z: profile.Y[i] * chord * thickness,
		}
	}

	return domain.SpanStation{
		Y:            y,
		Chord:        chord,
		LeadingEdgeX: leadingEdgeX,
		Points:       points,
	}
}

// mirrorStation reflects a station about the root plane by negating the
// spanwise coordinate. Chordwise and thickness coordinates are untouched.
func mirrorStation(st domain.SpanStation) domain.SpanStation {
	points := make([]domain.Vec3, len(st.Points))
	for i, p := range st.Points {
		points[i] = domain.Vec3{X: p.X, Y: -p.Y, Z: p.Z}
	}

	out := st
	out.Y = -st.Y
	out.Points = points
	return out
}
