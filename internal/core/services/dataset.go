package services

import (
	"context"
	"fmt"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
	"github.com/wingforge-labs/wingforge-cli/internal/geometry"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService exposes the airfoil coefficient table.
type DatasetService struct {
	airfoils driven.AirfoilSource
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(airfoils driven.AirfoilSource) *DatasetService {
	return &DatasetService{airfoils: airfoils}
}

// ListAirfoils returns all airfoil names, sorted.
func (s *DatasetService) ListAirfoils(ctx context.Context) ([]string, error) {
	names, err := s.airfoils.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airfoils: %w", err)
	}
	return names, nil
}

// Count returns the number of airfoils in the dataset.
func (s *DatasetService) Count(ctx context.Context) (int, error) {
	n, err := s.airfoils.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("count airfoils: %w", err)
	}
	return n, nil
}

// Profile decodes the named airfoil into a closed section loop.
func (s *DatasetService) Profile(ctx context.Context, name string, sampleCount int) (*domain.AirfoilProfile, error) {
	record, err := s.airfoils.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup airfoil: %w", err)
	}

	profile := geometry.DecodeProfile(*record, sampleCount)
	return &profile, nil
}
