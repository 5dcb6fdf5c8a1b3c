package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
)

// Ensure ModelStore implements the interface.
var _ driven.ModelStore = (*ModelStore)(nil)

// ModelStore is an in-memory implementation of driven.ModelStore for testing.
type ModelStore struct {
	mu     sync.RWMutex
	models map[string]domain.GeneratedModel
}

// NewModelStore creates a new in-memory model store.
func NewModelStore() *ModelStore {
	return &ModelStore{
		models: make(map[string]domain.GeneratedModel),
	}
}

// SaveModel stores a generated model record.
func (s *ModelStore) SaveModel(_ context.Context, model *domain.GeneratedModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[model.ID] = *model
	return nil
}

// GetModel retrieves a model record by ID.
func (s *ModelStore) GetModel(_ context.Context, id string) (*domain.GeneratedModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	model, ok := s.models[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &model, nil
}

// ListModels returns all model records, newest first.
func (s *ModelStore) ListModels(_ context.Context) ([]domain.GeneratedModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	models := make([]domain.GeneratedModel, 0, len(s.models))
	for _, model := range s.models {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool {
		if models[i].CreatedAt.Equal(models[j].CreatedAt) {
			return models[i].ID > models[j].ID
		}
		return models[i].CreatedAt.After(models[j].CreatedAt)
	})

	return models, nil
}
