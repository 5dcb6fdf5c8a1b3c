package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/messages"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/views/airfoils"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/views/designer"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/views/menu"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/views/models"
	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// designerView is the wing design form view component.
	designerView *designer.View

	// airfoilsView is the airfoil dataset browser view component.
	airfoilsView *airfoils.View

	// modelsView is the generated model catalog view component.
	modelsView *models.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	designerView := designer.NewView(s, ports.Generator, ports.Settings)
	airfoilsView := airfoils.NewView(s, ports.Dataset)
	modelsView := models.NewView(s, ports.Catalog)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menuView,
		designerView: designerView,
		airfoilsView: airfoilsView,
		modelsView:   modelsView,
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wingforge - Wing Designer"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.designerView.SetDimensions(msg.Width, msg.Height)
		a.airfoilsView.SetDimensions(msg.Width, msg.Height)
		a.modelsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewDesigner:
			a.designerView, cmd = a.designerView.Update(msg)
			// Sync state from designerView for accessor compatibility
			a.err = a.designerView.Err()
			return a, cmd

		case messages.ViewAirfoils:
			// Esc from airfoils goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			a.airfoilsView, cmd = a.airfoilsView.Update(msg)
			return a, cmd

		case messages.ViewModels:
			a.modelsView, cmd = a.modelsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them. The designer is not
		// reset so an in-progress design survives a trip through the
		// airfoil browser or the menu.
		switch msg.View {
		case messages.ViewDesigner:
			return a, a.designerView.Init()
		case messages.ViewAirfoils:
			return a, a.airfoilsView.Init()
		case messages.ViewModels:
			return a, a.modelsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.AirfoilSelected:
		// Navigate from the airfoil browser back into the designer
		a.designerView.SetAirfoil(msg.Name)
		a.currentView = messages.ViewDesigner
		return a, a.designerView.Init()

	case messages.AirfoilsLoaded:
		a.airfoilsView, cmd = a.airfoilsView.Update(msg)
		return a, cmd

	case messages.ModelsLoaded:
		a.modelsView, cmd = a.modelsView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		a.designerView, cmd = a.designerView.Update(msg)
		return a, cmd

	case messages.ModelGenerated:
		a.designerView, cmd = a.designerView.Update(msg)
		// Sync state
		a.err = a.designerView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDesigner:
		a.designerView, cmd = a.designerView.Update(msg)
	case messages.ViewAirfoils:
		a.airfoilsView, cmd = a.airfoilsView.Update(msg)
	case messages.ViewModels:
		a.modelsView, cmd = a.modelsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewDesigner:
		return a.designerView.View()
	case messages.ViewAirfoils:
		return a.airfoilsView.View()
	case messages.ViewModels:
		return a.modelsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Designer:
  tab/↓       Next row
  shift+tab/↑ Previous row
  enter       Choose airfoil / cycle strategy / generate
  (type)      Edit the focused parameter

Airfoils:
  j/k, ↑/↓    Navigate (pgup/pgdn to page)
  enter       Use airfoil in designer
  r           Reload dataset

Models:
  j/k, ↑/↓    Navigate
  enter       Toggle details
  r           Reload catalog

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Airfoil returns the airfoil selected in the designer.
func (a *App) Airfoil() string {
	return a.designerView.Airfoil()
}

// LastModel returns the most recently generated model.
func (a *App) LastModel() *domain.GeneratedModel {
	return a.designerView.LastModel()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also size the views so they render properly
	a.menuView.SetDimensions(width, height)
	a.designerView.SetDimensions(width, height)
	a.airfoilsView.SetDimensions(width, height)
	a.modelsView.SetDimensions(width, height)
}
