// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDesigner is the wing parameter form.
	ViewDesigner
	// ViewAirfoils is the airfoil dataset browser.
	ViewAirfoils
	// ViewModels is the generated model catalog browser.
	ViewModels
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDesigner:
		return "designer"
	case ViewAirfoils:
		return "airfoils"
	case ViewModels:
		return "models"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// AirfoilsLoaded carries the airfoil names from the dataset service.
type AirfoilsLoaded struct {
	Names []string
	Err   error
}

// AirfoilSelected signals an airfoil was chosen for the designer.
type AirfoilSelected struct {
	Name string
}

// ModelGenerated carries the outcome of a generation run.
type ModelGenerated struct {
	Model *domain.GeneratedModel
	Err   error
}

// ModelsLoaded carries the generated model catalog.
type ModelsLoaded struct {
	Models []domain.GeneratedModel
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}
