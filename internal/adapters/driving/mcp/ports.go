package mcp

import (
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
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
	// Catalog is optional; the model resources degrade without it
	return nil
}
