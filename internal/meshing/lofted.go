package meshing

import "github.com/wingforge-labs/wingforge-cli/internal/core/domain"

// BuildLofted stitches adjacent stations into a closed quad strip. Between
// every pair of neighbouring stations, each profile point and its successor
// (wrapping at the loop seam) span a quad split into two triangles. For S
// stations of P points each the result has exactly S*P vertices and
// 2*(S-1)*P triangles, in a fixed order.
func BuildLofted(stations []domain.SpanStation) (*domain.Mesh, error) {
	if len(stations) < 2 {
		return nil, &domain.MeshError{Strategy: domain.StrategyLofted, Reason: "fewer than 2 stations"}
	}

	perStation := len(stations[0].Points)
	for _, st := range stations {
		if len(st.Points) != perStation {
			return nil, &domain.MeshError{Strategy: domain.StrategyLofted, Reason: "station point counts differ"}
		}
	}
	if len(stations)*perStation < 4 {
		return nil, &domain.MeshError{Strategy: domain.StrategyLofted, Reason: "fewer than 4 points"}
	}

	mesh := &domain.Mesh{
		Vertices: packVertices(flattenStations(stations)),
		Indices:  make([]uint32, 0, (len(stations)-1)*perStation*6),
	}

	for s := 0; s < len(stations)-1; s++ {
		cur := uint32(s * perStation)
		next := uint32((s + 1) * perStation)

		for p := 0; p < perStation; p++ {
			wrapped := uint32((p + 1) % perStation)

			v0 := cur + uint32(p)
			v1 := next + uint32(p)
			v2 := cur + wrapped
			v3 := next + wrapped

			mesh.Indices = append(mesh.Indices, v0, v1, v2, v2, v1, v3)
		}
	}

	return mesh, nil
}
