package meshing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// assertOutwardUnitNormals checks every vertex normal is unit length and
// points away from the given interior point.
func assertOutwardUnitNormals(t *testing.T, mesh *domain.Mesh, interior domain.Vec3) {
	t.Helper()
	require.Len(t, mesh.Normals, len(mesh.Vertices))

	for i := 0; i < mesh.VertexCount(); i++ {
		n := domain.Vec3{
			X: float64(mesh.Normals[i*3]),
			Y: float64(mesh.Normals[i*3+1]),
			Z: float64(mesh.Normals[i*3+2]),
		}
		assert.InDelta(t, 1.0, length(n), 1e-5, "normal %d is not unit length", i)
		assert.Positive(t, dot(n, sub(vertexAt(mesh, uint32(i)), interior)), "normal %d points inward", i)
	}
}

// TestRecomputeNormals_Cube tests outward unit normals on a wound cube
func TestRecomputeNormals_Cube(t *testing.T) {
	mesh := cubeMesh()
	RecomputeNormals(mesh)

	assertOutwardUnitNormals(t, mesh, domain.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// TestRecomputeNormals_InwardCube tests the global outward flip
func TestRecomputeNormals_InwardCube(t *testing.T) {
	mesh := cubeMesh()
	for f := 0; f < mesh.TriangleCount(); f++ {
		flipFace(mesh, f)
	}

	RecomputeNormals(mesh)

	assert.Positive(t, signedVolume(mesh))
	assertOutwardUnitNormals(t, mesh, domain.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// TestRecomputeNormals_MixedWinding tests per-face winding repair
func TestRecomputeNormals_MixedWinding(t *testing.T) {
	mesh := cubeMesh()
	// Flip a handful of faces so neighbours disagree.
	for _, f := range []int{1, 4, 9} {
		flipFace(mesh, f)
	}

	RecomputeNormals(mesh)

	assert.Positive(t, signedVolume(mesh))
	assertOutwardUnitNormals(t, mesh, domain.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// TestRecomputeNormals_Empty tests the empty mesh path
func TestRecomputeNormals_Empty(t *testing.T) {
	mesh := &domain.Mesh{}
	RecomputeNormals(mesh)
	assert.Empty(t, mesh.Normals)

	lonely := &domain.Mesh{Vertices: []float32{0, 0, 0}}
	RecomputeNormals(lonely)
	assert.Len(t, lonely.Normals, 3)
	assert.Equal(t, float32(0), lonely.Normals[0])
}

// TestSignedVolume_Cube tests the volume sign and magnitude
func TestSignedVolume_Cube(t *testing.T) {
	mesh := cubeMesh()

	// Six times the unit cube volume.
	assert.InDelta(t, 6.0, signedVolume(mesh), 1e-9)

	for f := 0; f < mesh.TriangleCount(); f++ {
		flipFace(mesh, f)
	}
	assert.InDelta(t, -6.0, signedVolume(mesh), 1e-9)
}

// TestVertexNormals_Plane tests flat-surface normals
func TestVertexNormals_Plane(t *testing.T) {
	mesh := &domain.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}

	RecomputeNormals(mesh)

	for i := 0; i < mesh.VertexCount(); i++ {
		nz := float64(mesh.Normals[i*3+2])
		assert.InDelta(t, 1.0, math.Abs(nz), 1e-6)
	}
}
