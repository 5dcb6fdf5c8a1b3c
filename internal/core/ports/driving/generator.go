package driving

import (
	"context"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// GeneratorService runs the wing generation pipeline end to end.
type GeneratorService interface {
	// Generate validates the spec, builds the wing mesh from the named
	// airfoil, exports it as a GLB file and records it in the catalog.
	// All-or-nothing: on any error no file and no catalog row remain.
	Generate(ctx context.Context, airfoilName string, spec domain.WingSpec, opts domain.GenerateOptions) (*domain.GeneratedModel, error)
}
