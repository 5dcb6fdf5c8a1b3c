package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

func testProfile() domain.AirfoilProfile {
	// A small diamond loop in unit-chord space.
	return domain.AirfoilProfile{
		Name: "diamond",
		X:    []float64{1.0, 0.5, 0.0, 0.5},
		Y:    []float64{0.0, 0.1, 0.0, -0.1},
	}
}

func testOptions() domain.GenerateOptions {
	return domain.GenerateOptions{
		SampleCount:     2,
		StationCount:    4,
		ThicknessFactor: 1.0,
		Strategy:        domain.StrategyLofted,
	}
}

// TestLoft_StationLayout tests station count, ordering and root duplication
func TestLoft_StationLayout(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 25, TaperRatio: 0.5}

	stations := Loft(testProfile(), spec, testOptions())
	require.Len(t, stations, 8)

	for i := 1; i < len(stations); i++ {
		assert.LessOrEqual(t, stations[i-1].Y, stations[i].Y)
	}
	assert.InDelta(t, -5.0, stations[0].Y, 1e-12)
	assert.InDelta(t, 5.0, stations[7].Y, 1e-12)

	// Root ring is duplicated at the mirror seam.
	assert.InDelta(t, 0.0, stations[3].Y, 1e-12)
	assert.InDelta(t, 0.0, stations[4].Y, 1e-12)

	for _, st := range stations {
		assert.Len(t, st.Points, 4)
	}
}

// TestLoft_Mirroring tests exact reflection about the root plane
func TestLoft_Mirroring(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 25, TaperRatio: 0.5}

	stations := Loft(testProfile(), spec, testOptions())
	n := len(stations)

	for i := 0; i < n/2; i++ {
		left := stations[i]
		right := stations[n-1-i]

		assert.InDelta(t, -right.Y, left.Y, 1e-12)
		assert.InDelta(t, right.Chord, left.Chord, 1e-12)
		assert.InDelta(t, right.LeadingEdgeX, left.LeadingEdgeX, 1e-12)

		require.Len(t, left.Points, len(right.Points))
		for j := range right.Points {
			assert.InDelta(t, right.Points[j].X, left.Points[j].X, 1e-12)
			assert.InDelta(t, -right.Points[j].Y, left.Points[j].Y, 1e-12)
			assert.InDelta(t, right.Points[j].Z, left.Points[j].Z, 1e-12)
		}
	}
}

// TestLoft_ConstantChordAtUnitTaper tests that taper one keeps the root chord
func TestLoft_ConstantChordAtUnitTaper(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 10, TaperRatio: 1.0}

	for _, st := range Loft(testProfile(), spec, testOptions()) {
		assert.InDelta(t, 2.0, st.Chord, 1e-12)
	}
}

// TestLoft_ZeroSweepOffsets tests that zero sweep leaves stations unswept
func TestLoft_ZeroSweepOffsets(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 0, TaperRatio: 0.5}

	for _, st := range Loft(testProfile(), spec, testOptions()) {
		assert.InDelta(t, 0.0, st.LeadingEdgeX, 1e-12)
	}
}

// TestLoft_SweepOffset tests the leading-edge shift at 45 degrees
func TestLoft_SweepOffset(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 45, TaperRatio: 1.0}

	stations := Loft(testProfile(), spec, testOptions())
	tipRight := stations[len(stations)-1]
	tipLeft := stations[0]

	// tan(45) puts the tip leading edge a full semi-span aft, on both sides.
	assert.InDelta(t, 5.0, tipRight.LeadingEdgeX, 1e-9)
	assert.InDelta(t, 5.0, tipLeft.LeadingEdgeX, 1e-9)
}

// TestLoft_ChordClamp tests the floor under extreme taper
func TestLoft_ChordClamp(t *testing.T) {
	spec := domain.WingSpec{RootChord: 1, SemiSpan: 5, SweepDeg: 0, TaperRatio: 0.001}

	stations := Loft(testProfile(), spec, testOptions())
	tip := stations[len(stations)-1]

	assert.InDelta(t, domain.MinChord, tip.Chord, 1e-12)
	for _, st := range stations {
		assert.GreaterOrEqual(t, st.Chord, domain.MinChord-1e-12)
	}
}

// TestLoft_ThicknessScaling tests the explicit thickness factor
func TestLoft_ThicknessScaling(t *testing.T) {
	spec := domain.WingSpec{RootChord: 1, SemiSpan: 2, SweepDeg: 0, TaperRatio: 1.0}
	opts := testOptions()
	opts.ThicknessFactor = 2.0

	stations := Loft(testProfile(), spec, opts)
	root := stations[len(stations)/2]

	// Profile thickness 0.1 scaled by chord 1 and factor 2.
	assert.InDelta(t, 0.2, root.Points[1].Z, 1e-12)
	assert.InDelta(t, -0.2, root.Points[3].Z, 1e-12)
}

// TestLoft_StationPlacement tests y placement and chord interpolation
func TestLoft_StationPlacement(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 3, SweepDeg: 0, TaperRatio: 0.5}

	stations := Loft(testProfile(), spec, testOptions())
	right := stations[4:]

	wantY := []float64{0, 1, 2, 3}
	wantChord := []float64{2.0, 2.0 * (1 - 0.5/3.0), 2.0 * (1 - 1.0/3.0), 1.0}
	for i, st := range right {
		assert.InDelta(t, wantY[i], st.Y, 1e-12)
		assert.InDelta(t, wantChord[i], st.Chord, 1e-12)
	}

	// Points carry chord scaling plus the leading-edge offset in x.
	tip := right[3]
	assert.InDelta(t, 1.0*tip.Chord, tip.Points[0].X, 1e-12)
	assert.InDelta(t, 0.0, tip.Points[2].X, 1e-12)
}

// TestLoft_Deterministic tests repeatable station output
func TestLoft_Deterministic(t *testing.T) {
	spec := domain.WingSpec{RootChord: 2, SemiSpan: 5, SweepDeg: 25, TaperRatio: 0.5}

	a := Loft(testProfile(), spec, testOptions())
	b := Loft(testProfile(), spec, testOptions())
	assert.Equal(t, a, b)
}
