package meshing

import (
	"math"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

func sub(a, b domain.Vec3) domain.Vec3 {
	return domain.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func cross(a, b domain.Vec3) domain.Vec3 {
	return domain.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot(a, b domain.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func length(a domain.Vec3) float64 {
	return math.Sqrt(dot(a, a))
}

// vertexAt reads vertex i of the mesh buffer as a float64 point.
func vertexAt(mesh *domain.Mesh, i uint32) domain.Vec3 {
	return domain.Vec3{
		X: float64(mesh.Vertices[i*3]),
		Y: float64(mesh.Vertices[i*3+1]),
		Z: float64(mesh.Vertices[i*3+2]),
	}
}

// triangleArea returns the area spanned by three points.
func triangleArea(a, b, c domain.Vec3) float64 {
	return length(cross(sub(b, a), sub(c, a))) / 2
}
