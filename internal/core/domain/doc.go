// Package domain defines the core business entities for WingForge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AirfoilRecord: Tabulated polynomial coefficients for one airfoil
//   - AirfoilProfile: A decoded cross-section loop
//   - WingSpec: Validated wing-shape parameters
//   - SpanStation: One cross-section placed along the span
//   - Mesh: A triangle surface in flat GPU-ready buffers
//   - GeneratedModel: The catalog record of one exported wing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
