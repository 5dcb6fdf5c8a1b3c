package meshing

import "github.com/wingforge-labs/wingforge-cli/internal/core/domain"

// RecomputeNormals makes triangle winding consistent across shared edges,
// flips the whole surface outward when its signed volume is negative, and
// fills per-vertex normals weighted by face area.
func RecomputeNormals(mesh *domain.Mesh) {
	mesh.Normals = make([]float32, len(mesh.Vertices))
	if mesh.IsEmpty() {
		return
	}

	orientConsistently(mesh)
	if signedVolume(mesh) < 0 {
		for f := 0; f < mesh.TriangleCount(); f++ {
			flipFace(mesh, f)
		}
	}
	accumulateVertexNormals(mesh)
}

func triangle(mesh *domain.Mesh, f int) (uint32, uint32, uint32) {
	return mesh.Indices[f*3], mesh.Indices[f*3+1], mesh.Indices[f*3+2]
}

func flipFace(mesh *domain.Mesh, f int) {
	mesh.Indices[f*3+1], mesh.Indices[f*3+2] = mesh.Indices[f*3+2], mesh.Indices[f*3+1]
}

func undirectedEdge(a, b uint32) [2]uint32 {
	if a > b {
		a, b = b, a
	}
	return [2]uint32{a, b}
}

// containsDirected reports whether face f walks edge a to b in that order.
func containsDirected(mesh *domain.Mesh, f int, a, b uint32) bool {
	x, y, z := triangle(mesh, f)
	return (x == a && y == b) || (y == a && z == b) || (z == a && x == b)
}

// orientConsistently walks the face graph and flips faces whose winding
// disagrees with an already visited neighbour. Edges shared by more than
// two faces are not walked across.
func orientConsistently(mesh *domain.Mesh) {
	faceCount := mesh.TriangleCount()

	adjacency := make(map[[2]uint32][]int, faceCount*3/2)
	for f := 0; f < faceCount; f++ {
		a, b, c := triangle(mesh, f)
		adjacency[undirectedEdge(a, b)] = append(adjacency[undirectedEdge(a, b)], f)
		adjacency[undirectedEdge(b, c)] = append(adjacency[undirectedEdge(b, c)], f)
		adjacency[undirectedEdge(c, a)] = append(adjacency[undirectedEdge(c, a)], f)
	}

	visited := make([]bool, faceCount)
	queue := make([]int, 0, faceCount)

	for start := 0; start < faceCount; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]

			a, b, c := triangle(mesh, f)
			for _, e := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
				shared := adjacency[undirectedEdge(e[0], e[1])]
				if len(shared) > 2 {
					continue
				}
				for _, g := range shared {
					if g == f || visited[g] {
						continue
					}
					// Consistent neighbours walk the shared edge in the
					// opposite direction.
					if containsDirected(mesh, g, e[0], e[1]) {
						flipFace(mesh, g)
					}
					visited[g] = true
					queue = append(queue, g)
				}
			}
		}
	}
}

// signedVolume is six times the volume enclosed by the surface, signed by
// winding order.
func signedVolume(mesh *domain.Mesh) float64 {
	var total float64
	for f := 0; f < mesh.TriangleCount(); f++ {
		a, b, c := triangle(mesh, f)
		total += dot(vertexAt(mesh, a), cross(vertexAt(mesh, b), vertexAt(mesh, c)))
	}
	return total
}

// accumulateVertexNormals sums area-weighted face normals per vertex and
// normalises. Vertices with no surviving area fall back to +z.
func accumulateVertexNormals(mesh *domain.Mesh) {
	acc := make([]domain.Vec3, mesh.VertexCount())

	for f := 0; f < mesh.TriangleCount(); f++ {
		a, b, c := triangle(mesh, f)
		va := vertexAt(mesh, a)
		fn := cross(sub(vertexAt(mesh, b), va), sub(vertexAt(mesh, c), va))

		acc[a].X += fn.X
		acc[a].Y += fn.Y
		acc[a].Z += fn.Z
		acc[b].X += fn.X
		acc[b].Y += fn.Y
		acc[b].Z += fn.Z
		acc[c].X += fn.X
		acc[c].Y += fn.Y
		acc[c].Z += fn.Z
	}

	for i, n := range acc {
		l := length(n)
		if l < 1e-20 {
			mesh.Normals[i*3+2] = 1
			continue
		}
		mesh.Normals[i*3] = float32(n.X / l)
		mesh.Normals[i*3+1] = float32(n.Y / l)
		mesh.Normals[i*3+2] = float32(n.Z / l)
	}
}
