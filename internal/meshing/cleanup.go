package meshing

import (
	"math"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// DefaultMergeEpsilon is the default vertex merge distance in model units.
const DefaultMergeEpsilon = 1e-9

// DefaultAreaEpsilon is the default area at or below which a triangle is
// considered degenerate.
const DefaultAreaEpsilon = 1e-12

// Cleaner post-processes a built mesh into export shape.
type Cleaner struct {
	mergeEpsilon float64
	areaEpsilon  float64
}

// CleanerOption configures the cleaner.
type CleanerOption func(*Cleaner)

// WithMergeEpsilon sets the vertex merge distance in model units.
func WithMergeEpsilon(eps float64) CleanerOption {
	return func(c *Cleaner) {
		if eps > 0 {
			c.mergeEpsilon = eps
		}
	}
}

// WithAreaEpsilon sets the degenerate triangle area threshold.
func WithAreaEpsilon(eps float64) CleanerOption {
	return func(c *Cleaner) {
		if eps > 0 {
			c.areaEpsilon = eps
		}
	}
}

// NewCleaner creates a cleaner with the given options.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		mergeEpsilon: DefaultMergeEpsilon,
		areaEpsilon:  DefaultAreaEpsilon,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Clean returns an export-ready copy of the mesh. In order it drops
// zero-area and duplicate triangles, drops triangles touching non-finite
// vertices, merges coincident vertices, drops unreferenced vertices and
// recomputes outward normals. The input mesh is not modified.
func (c *Cleaner) Clean(mesh *domain.Mesh) *domain.Mesh {
	out := &domain.Mesh{
		Vertices: append([]float32(nil), mesh.Vertices...),
		Indices:  append([]uint32(nil), mesh.Indices...),
	}

	c.dropDegenerateTriangles(out)
	dropDuplicateTriangles(out)
	dropNonFiniteTriangles(out)
	c.mergeVertices(out)
	dropUnreferencedVertices(out)
	RecomputeNormals(out)

	return out
}

// dropDegenerateTriangles removes triangles with repeated indices or an
// area at or below the threshold. Triangles with non-finite vertices are
// kept; the non-finite pass handles them.
func (c *Cleaner) dropDegenerateTriangles(mesh *domain.Mesh) {
	kept := mesh.Indices[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, cc := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if a == b || b == cc || a == cc {
			continue
		}
		area := triangleArea(vertexAt(mesh, a), vertexAt(mesh, b), vertexAt(mesh, cc))
		if area <= c.areaEpsilon {
			continue
		}
		kept = append(kept, a, b, cc)
	}
	mesh.Indices = kept
}

// dropDuplicateTriangles removes repeated triangles regardless of winding,
// keeping the first occurrence.
func dropDuplicateTriangles(mesh *domain.Mesh) {
	seen := make(map[[3]uint32]bool, len(mesh.Indices)/3)
	kept := mesh.Indices[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		key := sortedTriple(mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2])
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2])
	}
	mesh.Indices = kept
}

func sortedTriple(a, b, c uint32) [3]uint32 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]uint32{a, b, c}
}

// dropNonFiniteTriangles removes triangles that touch a NaN or infinite
// vertex coordinate.
func dropNonFiniteTriangles(mesh *domain.Mesh) {
	finite := make([]bool, mesh.VertexCount())
	for i := range finite {
		finite[i] = finiteVertex(mesh, uint32(i))
	}

	kept := mesh.Indices[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if !finite[a] || !finite[b] || !finite[c] {
			continue
		}
		kept = append(kept, a, b, c)
	}
	mesh.Indices = kept
}

func finiteVertex(mesh *domain.Mesh, i uint32) bool {
	for k := uint32(0); k < 3; k++ {
		v := float64(mesh.Vertices[i*3+k])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// mergeVertices collapses vertices that coincide within the merge distance,
// remapping triangle indices to the first occurrence. Triangles degenerated
// by the merge are dropped.
func (c *Cleaner) mergeVertices(mesh *domain.Mesh) {
	canonical := make(map[[3]int64]uint32, mesh.VertexCount())
	remap := make([]uint32, mesh.VertexCount())

	for i := 0; i < mesh.VertexCount(); i++ {
		key := [3]int64{
			quantise(float64(mesh.Vertices[i*3]), c.mergeEpsilon),
			quantise(float64(mesh.Vertices[i*3+1]), c.mergeEpsilon),
			quantise(float64(mesh.Vertices[i*3+2]), c.mergeEpsilon),
		}
		if first, ok := canonical[key]; ok {
			remap[i] = first
			continue
		}
		canonical[key] = uint32(i)
		remap[i] = uint32(i)
	}

	kept := mesh.Indices[:0]
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := remap[mesh.Indices[i]]
		b := remap[mesh.Indices[i+1]]
		cc := remap[mesh.Indices[i+2]]
		if a == b || b == cc || a == cc {
			continue
		}
		kept = append(kept, a, b, cc)
	}
	mesh.Indices = kept
}

// quantise buckets a coordinate onto the merge grid.
func quantise(v, eps float64) int64 {
	return int64(math.Round(v / eps))
}

// dropUnreferencedVertices compacts the vertex buffer down to vertices that
// at least one triangle references.
func dropUnreferencedVertices(mesh *domain.Mesh) {
	used := make([]bool, mesh.VertexCount())
	for _, idx := range mesh.Indices {
		used[idx] = true
	}

	remap := make([]uint32, mesh.VertexCount())
	vertices := mesh.Vertices[:0]
	next := uint32(0)
	for i, u := range used {
		if !u {
			continue
		}
		remap[i] = next
		vertices = append(vertices, mesh.Vertices[i*3], mesh.Vertices[i*3+1], mesh.Vertices[i*3+2])
		next++
	}
	mesh.Vertices = vertices

	for i, idx := range mesh.Indices {
		mesh.Indices[i] = remap[idx]
	}
}
