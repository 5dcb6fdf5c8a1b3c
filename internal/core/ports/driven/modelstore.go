package driven

import (
	"context"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// ModelStore persists the catalog of generated models.
// Backed by SQLite for metadata storage; the GLB files themselves live on
// disk and the store only records where.
type ModelStore interface {
	// SaveModel stores a generated model record.
	SaveModel(ctx context.Context, model *domain.GeneratedModel) error

	// GetModel retrieves a model record by ID.
	// Returns ErrNotFound when no record has the ID.
	GetModel(ctx context.Context, id string) (*domain.GeneratedModel, error)

	// ListModels returns all model records, newest first.
	ListModels(ctx context.Context) ([]domain.GeneratedModel, error)
}
