// Package tui provides the interactive wing designer for wingforge.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Generator runs the wing generation pipeline.
	Generator driving.GeneratorService

	// Dataset provides read access to the airfoil dataset.
	Dataset driving.DatasetService

	// Catalog provides read access to generated models.
	// Optional; the models view degrades without it.
	Catalog driving.CatalogService

	// Settings manages application settings.
	// Optional; the designer falls back to built-in defaults without it.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	generator driving.GeneratorService,
	dataset driving.DatasetService,
	catalog driving.CatalogService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Generator: generator,
		Dataset:   dataset,
		Catalog:   catalog,
		Settings:  settings,
	}
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
	return nil
}
