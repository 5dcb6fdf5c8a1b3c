package domain

// DatasetSettings holds airfoil dataset location configuration.
type DatasetSettings struct {
	// Dir is the directory holding the coefficient table, either the
	// extracted CSV or the zip archive it ships in. Empty means the
	// application data directory.
	Dir string
}

// OutputSettings holds generated model output configuration.
type OutputSettings struct {
	// Dir is the directory exported GLB files are written to.
	// Empty means the application models directory.
	Dir string
}

// GenerationSettings holds the default pipeline tuning applied when a
// request does not override it.
type GenerationSettings struct {
	// SampleCount is the per-surface profile sample count N.
	SampleCount int

	// StationCount is the right-half spanwise station count S.
	StationCount int

	// ThicknessFactor scales profile thickness into model units.
	ThicknessFactor float64

	// Strategy is the triangulation policy.
	Strategy MeshingStrategy
}

// Options returns the settings as pipeline options with defaults filled in.
func (g GenerationSettings) Options() GenerateOptions {
	return GenerateOptions{
		SampleCount:     g.SampleCount,
		StationCount:    g.StationCount,
		ThicknessFactor: g.ThicknessFactor,
		Strategy:        g.Strategy,
	}.Normalised()
}

// ServerSettings holds the HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address as host:port.
	Addr string

	// RateLimit is the sustained generation requests per second.
	RateLimit float64

	// RateBurst is the generation rate limiter burst size.
	RateBurst int
}

// AppSettings aggregates all configurable application settings.
type AppSettings struct {
	// Dataset configures where the airfoil table is loaded from.
	Dataset DatasetSettings

	// Output configures where exported models are written.
	Output OutputSettings

	// Generation configures default pipeline tuning.
	Generation GenerationSettings

	// Server configures the HTTP API.
	Server ServerSettings
}

// DefaultAppSettings returns the settings used before any are saved.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{},
		Output:  OutputSettings{},
		Generation: GenerationSettings{
			SampleCount:     DefaultSampleCount,
			StationCount:    DefaultStationCount,
			ThicknessFactor: DefaultThicknessFactor,
			Strategy:        StrategyLofted,
		},
		Server: ServerSettings{
			Addr:      "127.0.0.1:8808",
			RateLimit: 2,
			RateBurst: 4,
		},
	}
}
