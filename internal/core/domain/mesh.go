package domain

const unknownDescription = "Unknown"

// MeshingStrategy selects how lofted stations become a triangle surface.
type MeshingStrategy string

// Available meshing strategies.
const (
	// StrategyLofted stitches adjacent stations into a wrapped quad strip.
	// This is the faithful surface and the default everywhere.
	StrategyLofted MeshingStrategy = "lofted"

	// StrategyConvexHull wraps the station point cloud in its convex hull.
	// Lossy: concave profile detail is flattened. Opt-in only, never a
	// silent fallback.
	StrategyConvexHull MeshingStrategy = "convex_hull"
)

// IsValid returns true if the strategy is recognised.
func (s MeshingStrategy) IsValid() bool {
	switch s {
	case StrategyLofted, StrategyConvexHull:
		return true
	default:
		return false
	}
}

// Lossy returns true if the strategy discards surface detail.
func (s MeshingStrategy) Lossy() bool {
	return s == StrategyConvexHull
}

// String returns the string representation.
func (s MeshingStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s MeshingStrategy) Description() string {
	switch s {
	case StrategyLofted:
		return "Lofted (faithful quad-strip surface)"
	case StrategyConvexHull:
		return "Convex hull (lossy outer envelope)"
	default:
		return unknownDescription
	}
}

// AllMeshingStrategies returns all available meshing strategies.
func AllMeshingStrategies() []MeshingStrategy {
	return []MeshingStrategy{
		StrategyLofted,
		StrategyConvexHull,
	}
}

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Mesh is a triangle surface in flat GPU-ready buffers.
type Mesh struct {
	// Vertices holds xyz position triplets.
	Vertices []float32

	// Normals holds per-vertex xyz normals, parallel to Vertices.
	// Empty until post-processing computes them.
	Normals []float32

	// Indices holds vertex indices, three per triangle.
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}
