// Package memory provides an in-memory airfoil source for tests and
// embedded fixtures.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.AirfoilSource = (*Source)(nil)

// Source is an in-memory implementation of driven.AirfoilSource.
type Source struct {
	mu      sync.RWMutex
	records map[string]domain.AirfoilRecord
}

// NewSource creates a source holding the given records.
func NewSource(records ...domain.AirfoilRecord) *Source {
	s := &Source{
		records: make(map[string]domain.AirfoilRecord, len(records)),
	}
	for _, rec := range records {
		s.records[rec.Name] = rec
	}
	return s
}

// Lookup retrieves the coefficient record for a named airfoil.
func (s *Source) Lookup(_ context.Context, name string) (*domain.AirfoilRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	if !ok {
		return nil, &domain.AirfoilNotFoundError{Name: name}
	}
	return &rec, nil
}

// Names returns all airfoil names, sorted.
func (s *Source) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of airfoils held.
func (s *Source) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
