package rest

import (
	"errors"

	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// Port wiring errors.
var (
	// ErrMissingGeneratorService is returned when the generator service is not provided.
	ErrMissingGeneratorService = errors.New("rest: generator service is required")

	// ErrMissingDatasetService is returned when the dataset service is not provided.
	ErrMissingDatasetService = errors.New("rest: dataset service is required")

	// ErrMissingCatalogService is returned when the catalog service is not provided.
	ErrMissingCatalogService = errors.New("rest: catalog service is required")
)

// Ports aggregates all driving port interfaces required by the HTTP API.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Generator runs the wing generation pipeline.
	Generator driving.GeneratorService

	// Dataset exposes the airfoil coefficient table.
	Dataset driving.DatasetService

	// Catalog exposes the generated-model catalog.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
