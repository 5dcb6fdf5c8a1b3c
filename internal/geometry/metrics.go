package geometry

import "github.com/wingforge-labs/wingforge-cli/internal/core/domain"

// Metrics derives planform quantities for the whole wing, both halves.
// The planform is trapezoidal: tip chord is the root chord scaled by
// taper, span is twice the semi-span, and area follows the trapezoid
// rule. The aspect ratio is omitted when the area is not positive.
func Metrics(spec domain.WingSpec) domain.DerivedMetrics {
	tip := spec.RootChord * spec.TaperRatio
	span := 2 * spec.SemiSpan
	area := spec.SemiSpan * (spec.RootChord + tip)

	metrics := domain.DerivedMetrics{
		TipChord:  tip,
		TotalSpan: span,
		WingArea:  area,
	}
	if area > 0 {
		ar := span * span / area
		metrics.AspectRatio = &ar
	}

	return metrics
}
