package domain

import "time"

// Generation pipeline defaults and bounds.
const (
	// DefaultSampleCount is N, the per-surface sample count for profile
	// decoding. The decoded loop has 2N points.
	DefaultSampleCount = 120

	// DefaultStationCount is S, the spanwise station count on the right
	// half wing. The mirrored wing carries 2S stations.
	DefaultStationCount = 20

	// DefaultThicknessFactor scales decoded profile thickness into model
	// units for export geometry. Visualisation pipelines that exaggerate
	// thickness override this with a much larger value (100.0 is common).
	DefaultThicknessFactor = 0.08

	// MinChord is the floor applied to the tapered chord during lofting
	// so extreme taper cannot collapse a station to a point.
	MinChord = 0.05
)

// GenerateOptions tunes the generation pipeline for one request.
type GenerateOptions struct {
	// SampleCount is the per-surface sample count N.
	SampleCount int

	// StationCount is the right-half station count S.
	StationCount int

	// ThicknessFactor scales profile thickness into model units.
	// Always explicit; the pipeline never infers it.
	ThicknessFactor float64

	// Strategy selects the triangulation policy.
	Strategy MeshingStrategy
}

// DefaultGenerateOptions returns the standard pipeline tuning.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		SampleCount:     DefaultSampleCount,
		StationCount:    DefaultStationCount,
		ThicknessFactor: DefaultThicknessFactor,
		Strategy:        StrategyLofted,
	}
}

// Normalised returns a copy with unset fields replaced by defaults.
func (o GenerateOptions) Normalised() GenerateOptions {
	out := o
	if out.SampleCount <= 0 {
		out.SampleCount = DefaultSampleCount
	}
	if out.StationCount <= 0 {
		out.StationCount = DefaultStationCount
	}
	if out.ThicknessFactor <= 0 {
		out.ThicknessFactor = DefaultThicknessFactor
	}
	if out.Strategy == "" {
		out.Strategy = StrategyLofted
	}
	return out
}

// DerivedMetrics are planform quantities computed from validated parameters.
// They describe the whole wing, both halves.
type DerivedMetrics struct {
	// TipChord is the root chord scaled by the taper ratio.
	TipChord float64

	// TotalSpan is twice the semi-span.
	TotalSpan float64

	// WingArea is the trapezoidal planform area of both halves.
	WingArea float64

	// AspectRatio is span squared over area.
	// Nil when the area is not positive.
	AspectRatio *float64
}

// GeneratedModel is the catalog record of one exported wing.
type GeneratedModel struct {
	// ID is the unique identifier for the model.
	ID string

	// AirfoilName is the dataset airfoil the wing was built from.
	AirfoilName string

	// Spec holds the wing-shape parameters the model was generated with.
	Spec WingSpec

	// Options holds the pipeline tuning the model was generated with.
	Options GenerateOptions

	// Metrics holds the derived planform quantities.
	Metrics DerivedMetrics

	// VertexCount is the exported vertex count after post-processing.
	VertexCount int

	// TriangleCount is the exported triangle count after post-processing.
	TriangleCount int

	// FilePath is the absolute path of the exported GLB file.
	FilePath string

	// FileSize is the exported file size in bytes.
	FileSize int64

	// CreatedAt is when the model was generated.
	CreatedAt time.Time
}
