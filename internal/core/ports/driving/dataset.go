package driving

import (
	"context"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// DatasetService exposes the airfoil coefficient table to external actors.
type DatasetService interface {
	// ListAirfoils returns all airfoil names, sorted.
	ListAirfoils(ctx context.Context) ([]string, error)

	// Count returns the number of airfoils in the dataset.
	Count(ctx context.Context) (int, error)

	// Profile decodes the named airfoil into a closed 2-D section loop
	// with the given per-surface sample count.
	Profile(ctx context.Context, name string, sampleCount int) (*domain.AirfoilProfile, error)
}
