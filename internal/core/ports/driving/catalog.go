package driving

import (
	"context"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// CatalogService exposes the generated-model catalog to external actors.
type CatalogService interface {
	// List returns all generated models, newest first.
	List(ctx context.Context) ([]domain.GeneratedModel, error)

	// Get retrieves a generated model by ID.
	// Returns ErrNotFound when no model has the ID.
	Get(ctx context.Context, id string) (*domain.GeneratedModel, error)
}
