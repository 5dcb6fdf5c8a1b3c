// Package airfoils provides the airfoil dataset browser view for the TUI.
package airfoils

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/components/list"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/messages"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// chromeHeight is the number of lines around the list (title, count, help).
const chromeHeight = 7

// View is the airfoil dataset browser.
// Selecting an airfoil hands it to the designer.
type View struct {
	styles         *styles.Styles
	datasetService driving.DatasetService

	list    *list.NameList
	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new airfoils view.
func NewView(s *styles.Styles, datasetService driving.DatasetService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		datasetService: datasetService,
		list:           list.NewNameList(s),
	}
}

// Init initialises the view and loads the airfoil names.
func (v *View) Init() tea.Cmd {
	return v.loadAirfoils()
}

// loadAirfoils returns a command that loads airfoil names from the dataset.
func (v *View) loadAirfoils() tea.Cmd {
	return func() tea.Msg {
		if v.datasetService == nil {
			return messages.AirfoilsLoaded{Err: fmt.Errorf("dataset service not available")}
		}

		names, err := v.datasetService.ListAirfoils(context.Background())
		return messages.AirfoilsLoaded{Names: names, Err: err}
	}
}

// Update handles messages for the airfoils view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.list.SetDimensions(msg.Width, msg.Height-chromeHeight)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AirfoilsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.list.SetNames(msg.Names)
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j", "pgup", "pgdown":
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd

	case "enter":
		// Hand the selected airfoil to the designer
		if name := v.list.SelectedName(); name != "" {
			return v, func() tea.Msg {
				return messages.AirfoilSelected{Name: name}
			}
		}

	case "r":
		// Reload the dataset
		v.loading = true
		cmd := v.loadAirfoils()
		return v, cmd
	}

	return v, nil
}

// View renders the airfoils view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	b.WriteString(v.styles.Title.Render("Airfoils"))
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading airfoils..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty state
	if v.list.IsEmpty() {
		b.WriteString(v.styles.Muted.Render("No airfoils in the dataset."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Count line
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%d airfoils in dataset", v.list.Count())))
	b.WriteString("\n\n")

	// Airfoil list
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[j/k] navigate  [enter] use in designer  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-chromeHeight)
}

// Names returns the current list of airfoil names.
func (v *View) Names() []string {
	return v.list.Names()
}

// SelectedIndex returns the currently selected airfoil index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
