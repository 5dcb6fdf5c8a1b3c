package meshing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// cubeMesh returns a unit cube with outward winding.
func cubeMesh() *domain.Mesh {
	return &domain.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
			0, 0, 1,
			1, 0, 1,
			1, 1, 1,
			0, 1, 1,
		},
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // bottom
			4, 5, 6, 4, 6, 7, // top
			0, 1, 5, 0, 5, 4, // front
			2, 3, 7, 2, 7, 6, // back
			0, 4, 7, 0, 7, 3, // left
			1, 2, 6, 1, 6, 5, // right
		},
	}
}

// TestCleaner_DropsDegenerateTriangles tests zero-area removal
func TestCleaner_DropsDegenerateTriangles(t *testing.T) {
	mesh := cubeMesh()
	mesh.Vertices = append(mesh.Vertices, 0.5, 0, 0) // vertex 8, on edge 0-1
	mesh.Indices = append(mesh.Indices, 0, 0, 1)     // repeated index
	mesh.Indices = append(mesh.Indices, 0, 8, 1)     // collinear, zero area

	cleaned := NewCleaner().Clean(mesh)

	// Both injected triangles vanish and nothing unreferenced remains.
	assert.Equal(t, 12, cleaned.TriangleCount())
	assert.Equal(t, 8, cleaned.VertexCount())
}

// TestCleaner_DropsDuplicateTriangles tests duplicate removal across winding
func TestCleaner_DropsDuplicateTriangles(t *testing.T) {
	mesh := cubeMesh()
	// Same triangle again, once verbatim and once rewound.
	mesh.Indices = append(mesh.Indices, 0, 2, 1)
	mesh.Indices = append(mesh.Indices, 2, 0, 1)

	cleaned := NewCleaner().Clean(mesh)

	assert.Equal(t, 12, cleaned.TriangleCount())
}

// TestCleaner_DropsNonFiniteTriangles tests NaN and Inf vertex handling
func TestCleaner_DropsNonFiniteTriangles(t *testing.T) {
	mesh := cubeMesh()
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	mesh.Vertices = append(mesh.Vertices, nan, 0, 0) // vertex 8
	mesh.Vertices = append(mesh.Vertices, 0, inf, 0) // vertex 9
	mesh.Indices = append(mesh.Indices, 0, 1, 8)
	mesh.Indices = append(mesh.Indices, 0, 9, 1)

	cleaned := NewCleaner().Clean(mesh)

	assert.Equal(t, 12, cleaned.TriangleCount())
	assert.Equal(t, 8, cleaned.VertexCount())
	for _, v := range cleaned.Vertices {
		assert.False(t, math.IsNaN(float64(v)))
		assert.False(t, math.IsInf(float64(v), 0))
	}
}

// TestCleaner_MergesCoincidentVertices tests epsilon vertex welding
func TestCleaner_MergesCoincidentVertices(t *testing.T) {
	mesh := cubeMesh()
	// Duplicate corner 2 as vertex 8 and point one right-face triangle at it.
	mesh.Vertices = append(mesh.Vertices, 1, 1, 0)
	mesh.Indices[len(mesh.Indices)-5] = 8 // triangle 1,2,6 becomes 1,8,6

	cleaned := NewCleaner().Clean(mesh)

	// The duplicate welds back onto corner 2 and leaves the buffer.
	assert.Equal(t, 8, cleaned.VertexCount())
	assert.Equal(t, 12, cleaned.TriangleCount())
}

// TestCleaner_DropsUnreferencedVertices tests buffer compaction
func TestCleaner_DropsUnreferencedVertices(t *testing.T) {
	mesh := cubeMesh()
	mesh.Vertices = append(mesh.Vertices, 5, 5, 5) // never referenced

	cleaned := NewCleaner().Clean(mesh)

	assert.Equal(t, 8, cleaned.VertexCount())
	for _, idx := range cleaned.Indices {
		assert.Less(t, idx, uint32(cleaned.VertexCount()))
	}
}

// TestCleaner_LoftedSeam tests collapse of a duplicated station ring
func TestCleaner_LoftedSeam(t *testing.T) {
	// Two identical stations produce only zero-area stitching, then two
	// distinct ones carry real surface.
	stations := []domain.SpanStation{
		{Points: squareLoop(0)},
		{Points: squareLoop(0)},
		{Points: squareLoop(1)},
	}

	mesh, err := BuildLofted(stations)
	require.NoError(t, err)
	assert.Equal(t, 16, mesh.TriangleCount())

	cleaned := NewCleaner().Clean(mesh)

	// The seam strip vanishes and its ring merges with the surviving one.
	assert.Equal(t, 8, cleaned.TriangleCount())
	assert.Equal(t, 8, cleaned.VertexCount())
}

func squareLoop(y float64) []domain.Vec3 {
	return []domain.Vec3{
		{X: 0, Y: y, Z: 0},
		{X: 1, Y: y, Z: 0},
		{X: 1, Y: y, Z: 1},
		{X: 0, Y: y, Z: 1},
	}
}

// TestCleaner_Options tests threshold overrides
func TestCleaner_Options(t *testing.T) {
	c := NewCleaner(WithMergeEpsilon(0.25), WithAreaEpsilon(1e-6))
	assert.InDelta(t, 0.25, c.mergeEpsilon, 1e-12)
	assert.InDelta(t, 1e-6, c.areaEpsilon, 1e-12)

	// Non-positive values keep the defaults.
	d := NewCleaner(WithMergeEpsilon(0), WithAreaEpsilon(-1))
	assert.InDelta(t, DefaultMergeEpsilon, d.mergeEpsilon, 1e-18)
	assert.InDelta(t, DefaultAreaEpsilon, d.areaEpsilon, 1e-18)
}

// TestCleaner_InputUntouched tests that cleaning copies rather than mutates
func TestCleaner_InputUntouched(t *testing.T) {
	mesh := cubeMesh()
	mesh.Indices = append(mesh.Indices, 0, 0, 1)
	before := append([]uint32(nil), mesh.Indices...)

	_ = NewCleaner().Clean(mesh)

	assert.Equal(t, before, mesh.Indices)
	assert.Empty(t, mesh.Normals)
}

// TestCleaner_Deterministic tests repeatable cleaning
func TestCleaner_Deterministic(t *testing.T) {
	mesh := cubeMesh()
	mesh.Vertices = append(mesh.Vertices, 1, 1, 0)
	mesh.Indices = append(mesh.Indices, 0, 0, 1)

	a := NewCleaner().Clean(mesh)
	b := NewCleaner().Clean(mesh)

	assert.Equal(t, a, b)
}
