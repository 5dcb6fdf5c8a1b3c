// Package meshing turns lofted span stations into triangle surfaces and
// post-processes them for export.
//
// Two strategies exist. The lofted builder stitches adjacent stations into
// a wrapped quad strip and is the faithful default. The convex hull builder
// wraps the station point cloud in its outer envelope; it flattens concave
// profile detail and is only ever selected explicitly.
//
// The Cleaner removes degenerate and duplicate triangles, merges coincident
// vertices, drops unreferenced vertices and recomputes outward normals.
// Builders and Cleaner are deterministic: identical input yields an
// identical mesh, bit for bit.
package meshing
