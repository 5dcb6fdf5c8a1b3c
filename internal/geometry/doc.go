// Package geometry implements the pure maths of the wing pipeline:
// airfoil profile decoding, spanwise lofting and derived planform metrics.
//
// Everything here is deterministic and side-effect free. Parameters arrive
// already validated; functions in this package never perform I/O and never
// re-validate.
package geometry
