package meshing

import "github.com/wingforge-labs/wingforge-cli/internal/core/domain"

// Build triangulates lofted stations with the requested strategy.
// An empty strategy selects the lofted default; unknown strategies fail.
func Build(strategy domain.MeshingStrategy, stations []domain.SpanStation) (*domain.Mesh, error) {
	switch strategy {
	case domain.StrategyLofted, "":
		return BuildLofted(stations)
	case domain.StrategyConvexHull:
		return BuildConvexHull(stations)
	default:
		return nil, &domain.MeshError{Strategy: strategy, Reason: "unknown strategy"}
	}
}

// flattenStations collects station points into one slice, station by
// station, preserving point order within each station.
func flattenStations(stations []domain.SpanStation) []domain.Vec3 {
	total := 0
	for _, st := range stations {
		total += len(st.Points)
	}

	points := make([]domain.Vec3, 0, total)
	for _, st := range stations {
		points = append(points, st.Points...)
	}
	return points
}

// packVertices converts points into the flat float32 vertex buffer.
func packVertices(points []domain.Vec3) []float32 {
	vertices := make([]float32, 0, len(points)*3)
	for _, p := range points {
		vertices = append(vertices, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return vertices
}
