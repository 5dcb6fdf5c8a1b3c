// Package models provides the generated model catalog view for the TUI.
package models

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/messages"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

const shortIDLen = 8

// View is the generated model catalog view.
type View struct {
	styles         *styles.Styles
	catalogService driving.CatalogService

	// Catalog state
	models     []domain.GeneratedModel
	selected   int
	showDetail bool
	loading    bool
	err        error

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new models view.
func NewView(s *styles.Styles, catalogService driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		catalogService: catalogService,
		loading:        true,
	}
}

// Init initialises the view and loads the catalog.
func (v *View) Init() tea.Cmd {
	return v.loadModels()
}

// loadModels returns a command that loads the generated model catalog.
func (v *View) loadModels() tea.Cmd {
	return func() tea.Msg {
		if v.catalogService == nil {
			return messages.ModelsLoaded{Err: fmt.Errorf("catalog service not available")}
		}
		models, err := v.catalogService.List(context.Background())
		return messages.ModelsLoaded{Models: models, Err: err}
	}
}

// Update handles messages for the models view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ModelsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.models = msg.Models
		v.err = nil
		if v.selected >= len(v.models) {
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses for the catalog.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Close the detail pane first, leave the view second.
		if v.showDetail {
			v.showDetail = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.models)-1 {
			v.selected++
		}
	case "enter":
		if len(v.models) > 0 {
			v.showDetail = !v.showDetail
		}
	case "r":
		v.loading = true
		v.showDetail = false
		return v, v.loadModels()
	}

	return v, nil
}

// View renders the models view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Models"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading models..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()

	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()

	case len(v.models) == 0:
		b.WriteString(v.styles.Muted.Render("No models generated yet."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%d generated models", len(v.models))))
	b.WriteString("\n\n")

	for i := range v.models {
		b.WriteString(v.renderModel(i))
		b.WriteString("\n")
	}

	if v.showDetail && v.selected < len(v.models) {
		b.WriteString("\n")
		b.WriteString(v.renderDetail(v.models[v.selected]))
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderModel(i int) string {
	m := v.models[i]

	indicator := "  "
	if i == v.selected {
		indicator = "> "
	}

	line := fmt.Sprintf("%s%s  %-16s %6d tris  %s",
		indicator, shortID(m.ID), m.AirfoilName, m.TriangleCount,
		m.CreatedAt.Format("2006-01-02 15:04"))

	if i == v.selected {
		return v.styles.Selected.Render(line)
	}
	return v.styles.Normal.Render(line)
}

func (v *View) renderDetail(m domain.GeneratedModel) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Model %s", m.ID)))
	b.WriteString("\n")

	ar := "n/a"
	if m.Metrics.AspectRatio != nil {
		ar = fmt.Sprintf("%.2f", *m.Metrics.AspectRatio)
	}

	rows := []string{
		fmt.Sprintf("File:     %s (%s)", m.FilePath, sizeLabel(m.FileSize)),
		fmt.Sprintf("Spec:     root %.3f  semi-span %.3f  sweep %.1f deg  taper %.3f",
			m.Spec.RootChord, m.Spec.SemiSpan, m.Spec.SweepDeg, m.Spec.TaperRatio),
		fmt.Sprintf("Mesh:     %d vertices  %d triangles  %s",
			m.VertexCount, m.TriangleCount, m.Options.Strategy),
		fmt.Sprintf("Planform: tip chord %.3f  span %.3f  area %.3f  aspect ratio %s",
			m.Metrics.TipChord, m.Metrics.TotalSpan, m.Metrics.WingArea, ar),
	}
	for _, row := range rows {
		b.WriteString(v.styles.Normal.Render(row))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	if v.showDetail {
		return v.styles.Help.Render("[j/k] navigate  [enter] close details  [esc] back")
	}
	return v.styles.Help.Render("[j/k] navigate  [enter] details  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.models = nil
	v.selected = 0
	v.showDetail = false
	v.loading = true
	v.err = nil
}

// Models returns the loaded catalog entries.
func (v *View) Models() []domain.GeneratedModel {
	return v.models
}

// SelectedIndex returns the selected catalog index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// ShowingDetail reports whether the detail pane is open.
func (v *View) ShowingDetail() bool {
	return v.showDetail
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func sizeLabel(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
