package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the generated-model catalog.
type CatalogService struct {
	store driven.ModelStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.ModelStore) *CatalogService {
	return &CatalogService{store: store}
}

// List returns all generated models, newest first.
func (s *CatalogService) List(ctx context.Context) ([]domain.GeneratedModel, error) {
	models, err := s.store.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return models, nil
}

// Get retrieves a generated model by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.GeneratedModel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty model id", domain.ErrInvalidInput)
	}

	model, err := s.store.GetModel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get model %s: %w", id, err)
	}
	return model, nil
}
