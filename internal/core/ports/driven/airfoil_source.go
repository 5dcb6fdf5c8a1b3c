package driven

import (
	"context"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// AirfoilSource provides read access to the airfoil coefficient table.
// Implementations load the table however they like (CSV file, archive,
// in-memory fixture) but must present it as an immutable lookup.
type AirfoilSource interface {
	// Lookup retrieves the coefficient record for a named airfoil.
	// Returns AirfoilNotFoundError when the name is not in the table and
	// ErrDataUnavailable when the table itself cannot be obtained.
	Lookup(ctx context.Context, name string) (*domain.AirfoilRecord, error)

	// Names returns all airfoil names in the table, sorted.
	Names(ctx context.Context) ([]string, error)

	// Len returns the number of airfoils in the table.
	Len(ctx context.Context) (int, error)
}
