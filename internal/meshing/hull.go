package meshing

import (
	"math"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// BuildConvexHull wraps the station point cloud in its convex envelope.
// The result references only hull vertices; interior points stay in the
// vertex buffer until cleanup drops them as unreferenced. Fails when the
// cloud has fewer than four points or spans no volume.
func BuildConvexHull(stations []domain.SpanStation) (*domain.Mesh, error) {
	points := flattenStations(stations)

	faces, err := convexHull(points)
	if err != nil {
		return nil, err
	}

	return &domain.Mesh{
		Vertices: packVertices(points),
		Indices:  faces,
	}, nil
}

type hullFace struct {
	a, b, c int
}

// convexHull computes the triangle faces of the convex envelope with an
// incremental algorithm: seed a tetrahedron from extreme points, then for
// each remaining point delete the faces it can see and re-cone the horizon
// edges onto it. Points are inserted in input order, so the face list is
// deterministic for identical input.
func convexHull(points []domain.Vec3) ([]uint32, error) {
	if len(points) < 4 {
		return nil, hullError("fewer than 4 points")
	}

	eps := hullEpsilon(points)

	seed, err := initialSimplex(points, eps)
	if err != nil {
		return nil, err
	}

	interior := domain.Vec3{
		X: (points[seed[0]].X + points[seed[1]].X + points[seed[2]].X + points[seed[3]].X) / 4,
		Y: (points[seed[0]].Y + points[seed[1]].Y + points[seed[2]].Y + points[seed[3]].Y) / 4,
		Z: (points[seed[0]].Z + points[seed[1]].Z + points[seed[2]].Z + points[seed[3]].Z) / 4,
	}

	orient := func(f hullFace) hullFace {
		if signedDistance(points, f, interior) > 0 {
			return hullFace{a: f.a, b: f.c, c: f.b}
		}
		return f
	}

	faces := []hullFace{
		orient(hullFace{a: seed[0], b: seed[1], c: seed[2]}),
		orient(hullFace{a: seed[0], b: seed[1], c: seed[3]}),
		orient(hullFace{a: seed[0], b: seed[2], c: seed[3]}),
		orient(hullFace{a: seed[1], b: seed[2], c: seed[3]}),
	}

	inSeed := map[int]bool{seed[0]: true, seed[1]: true, seed[2]: true, seed[3]: true}

	for idx, p := range points {
		if inSeed[idx] {
			continue
		}

		visible := make(map[int]bool)
		for fi, f := range faces {
			if signedDistance(points, f, p) > eps {
				visible[fi] = true
			}
		}
		if len(visible) == 0 {
			continue
		}
		if len(visible) == len(faces) {
			return nil, hullError("hull collapsed")
		}

		// Directed edge to owning face, across the whole current hull.
		edgeOwner := make(map[[2]int]int, len(faces)*3)
		for fi, f := range faces {
			edgeOwner[[2]int{f.a, f.b}] = fi
			edgeOwner[[2]int{f.b, f.c}] = fi
			edgeOwner[[2]int{f.c, f.a}] = fi
		}

		// Horizon edges are edges of visible faces whose twin edge belongs
		// to a hidden face. Collected in face order to stay deterministic.
		var horizon [][2]int
		for fi, f := range faces {
			if !visible[fi] {
				continue
			}
			for _, e := range [3][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
				twin, ok := edgeOwner[[2]int{e[1], e[0]}]
				if !ok || !visible[twin] {
					horizon = append(horizon, e)
				}
			}
		}

		kept := make([]hullFace, 0, len(faces)-len(visible)+len(horizon))
		for fi, f := range faces {
			if !visible[fi] {
				kept = append(kept, f)
			}
		}
		for _, e := range horizon {
			kept = append(kept, orient(hullFace{a: e[0], b: e[1], c: idx}))
		}
		faces = kept
	}

	indices := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		indices = append(indices, uint32(f.a), uint32(f.b), uint32(f.c))
	}
	return indices, nil
}

func hullError(reason string) error {
	return &domain.MeshError{Strategy: domain.StrategyConvexHull, Reason: reason}
}

// hullEpsilon scales the visibility tolerance to the cloud extents.
func hullEpsilon(points []domain.Vec3) float64 {
	lo, hi := points[0], points[0]
	for _, p := range points {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.Z < lo.Z {
			lo.Z = p.Z
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
		if p.Z > hi.Z {
			hi.Z = p.Z
		}
	}

	diag := length(sub(hi, lo))
	if diag == 0 {
		return 1e-12
	}
	return diag * 1e-9
}

// signedDistance is the distance of p above the plane of f, positive on the
// side the face normal points to.
func signedDistance(points []domain.Vec3, f hullFace, p domain.Vec3) float64 {
	n := cross(sub(points[f.b], points[f.a]), sub(points[f.c], points[f.a]))
	l := length(n)
	if l == 0 {
		return 0
	}
	return dot(n, sub(p, points[f.a])) / l
}

// initialSimplex picks four points spanning a volume: an extreme point, the
// point farthest from it, the point farthest from that line, and the point
// farthest from their plane.
func initialSimplex(points []domain.Vec3, eps float64) ([4]int, error) {
	var seed [4]int

	first := 0
	for i, p := range points {
		q := points[first]
		if p.X < q.X || (p.X == q.X && (p.Y < q.Y || (p.Y == q.Y && p.Z < q.Z))) {
			first = i
		}
	}
	seed[0] = first

	far, dist := first, 0.0
	for i, p := range points {
		if d := length(sub(p, points[first])); d > dist {
			far, dist = i, d
		}
	}
	if dist <= eps {
		return seed, hullError("points are coincident")
	}
	seed[1] = far

	lineDir := sub(points[seed[1]], points[seed[0]])
	third, lineDist := -1, 0.0
	for i, p := range points {
		if d := length(cross(lineDir, sub(p, points[seed[0]]))); d > lineDist {
			third, lineDist = i, d
		}
	}
	if third < 0 || lineDist <= eps*length(lineDir) {
		return seed, hullError("points are collinear")
	}
	seed[2] = third

	planeNormal := cross(lineDir, sub(points[seed[2]], points[seed[0]]))
	planeLen := length(planeNormal)
	fourth, planeDist := -1, 0.0
	for i, p := range points {
		if d := math.Abs(dot(planeNormal, sub(p, points[seed[0]]))); d > planeDist {
			fourth, planeDist = i, d
		}
	}
	if fourth < 0 || planeDist <= eps*planeLen {
		return seed, hullError("points are coplanar")
	}
	seed[3] = fourth

	return seed, nil
}
