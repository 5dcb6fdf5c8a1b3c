// Package designer provides the wing design form view for the TUI.
package designer

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/components/input"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/components/status"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/keymap"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/messages"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
	"github.com/wingforge-labs/wingforge-cli/internal/geometry"
	"github.com/wingforge-labs/wingforge-cli/internal/promptparse"
)

// Form rows from top to bottom. The parameter rows between rowAirfoil and
// rowStrategy map onto the fields slice.
const (
	rowAirfoil = iota
	rowRootChord
	rowSemiSpan
	rowSweep
	rowTaper
	rowSamples
	rowStations
	rowStrategy
	rowGenerate
)

// Indices into the fields slice.
const (
	fieldRootChord = iota
	fieldSemiSpan
	fieldSweep
	fieldTaper
	fieldSamples
	fieldStations
	fieldCount
)

const labelWidth = 14

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyTab   = "tab"
)

// View is the wing design form view.
type View struct {
	styles           *styles.Styles
	generatorService driving.GeneratorService
	settingsService  driving.SettingsService

	// Form state
	airfoil   string
	fields    []*input.Field
	strategy  domain.MeshingStrategy
	thickness float64
	selected  int
	seeded    bool

	// Generation state
	generating bool
	lastModel  *domain.GeneratedModel
	err        error
	bar        *status.Bar

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new designer view with factory defaults applied.
func NewView(s *styles.Styles, generatorService driving.GeneratorService, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fields := make([]*input.Field, fieldCount)
	fields[fieldRootChord] = input.NewField(s, "Root chord", "2.0")
	fields[fieldSemiSpan] = input.NewField(s, "Semi-span", "5.0")
	fields[fieldSweep] = input.NewField(s, "Sweep (deg)", "25")
	fields[fieldTaper] = input.NewField(s, "Taper ratio", "0.5")
	fields[fieldSamples] = input.NewField(s, "Samples", "120")
	fields[fieldStations] = input.NewField(s, "Stations", "20")

	v := &View{
		styles:           s,
		generatorService: generatorService,
		settingsService:  settingsService,
		fields:           fields,
		selected:         rowAirfoil,
		bar:              status.NewBar(s, keymap.DefaultKeyMap()),
	}
	v.applyFactoryDefaults()

	return v
}

// applyFactoryDefaults seeds the form with the built-in parameter defaults.
func (v *View) applyFactoryDefaults() {
	defaults := domain.DefaultGenerateOptions()
	v.fields[fieldRootChord].SetValue(formatFloat(promptparse.DefaultRootChord))
	v.fields[fieldSemiSpan].SetValue(formatFloat(promptparse.DefaultSpan / 2))
	v.fields[fieldSweep].SetValue(formatFloat(promptparse.DefaultSweepDeg))
	v.fields[fieldTaper].SetValue(formatFloat(promptparse.DefaultTaperRatio))
	v.fields[fieldSamples].SetValue(strconv.Itoa(defaults.SampleCount))
	v.fields[fieldStations].SetValue(strconv.Itoa(defaults.StationCount))
	v.thickness = defaults.ThicknessFactor
	v.strategy = defaults.Strategy
}

// Init loads saved generation defaults on first entry. Later entries keep
// whatever the user has typed.
func (v *View) Init() tea.Cmd {
	if v.seeded || v.settingsService == nil {
		return nil
	}
	return v.loadDefaults()
}

// loadDefaults returns a command that loads saved settings.
func (v *View) loadDefaults() tea.Cmd {
	return func() tea.Msg {
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the designer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.seeded = true
		if msg.Err != nil || msg.Settings == nil {
			// Keep factory defaults when settings cannot be read.
			return v, nil
		}
		v.applyGenerationSettings(msg.Settings.Generation)
		return v, nil

	case messages.ModelGenerated:
		v.generating = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		if msg.Model == nil {
			v.bar.Clear()
			return v, nil
		}
		v.lastModel = msg.Model
		v.err = nil
		v.bar.SetState(status.StateDone)
		v.bar.SetMessage(filepath.Base(msg.Model.FilePath))
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// applyGenerationSettings overrides the tuning rows with saved defaults.
// The shape rows stay untouched; settings carry no wing parameters.
func (v *View) applyGenerationSettings(g domain.GenerationSettings) {
	opts := g.Options()
	v.fields[fieldSamples].SetValue(strconv.Itoa(opts.SampleCount))
	v.fields[fieldStations].SetValue(strconv.Itoa(opts.StationCount))
	v.thickness = opts.ThicknessFactor
	v.strategy = opts.Strategy
}

// handleKeyMsg handles key presses for the form.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "shift+tab":
		return v, v.moveTo(v.selected - 1)
	case keyDown, keyTab:
		return v, v.moveTo(v.selected + 1)
	case "k", "j":
		// Vim keys navigate only off the text fields, where they
		// would otherwise be swallowed as input.
		if v.currentField() == nil {
			if key == "k" {
				return v, v.moveTo(v.selected - 1)
			}
			return v, v.moveTo(v.selected + 1)
		}
	case keyEnter:
		return v.handleEnter()
	case " ":
		if v.selected == rowStrategy {
			v.cycleStrategy()
			return v, nil
		}
	}

	// Remaining keys edit the focused field.
	if f := v.currentField(); f != nil {
		var cmd tea.Cmd
		_, cmd = f.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleEnter acts on the selected row.
func (v *View) handleEnter() (*View, tea.Cmd) {
	switch v.selected {
	case rowAirfoil:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewAirfoils}
		}
	case rowStrategy:
		v.cycleStrategy()
		return v, nil
	case rowGenerate:
		return v.generate()
	default:
		return v, v.moveTo(v.selected + 1)
	}
}

// moveTo changes the selected row, shifting field focus along with it.
func (v *View) moveTo(row int) tea.Cmd {
	if row < rowAirfoil {
		row = rowAirfoil
	}
	if row > rowGenerate {
		row = rowGenerate
	}
	if f := v.currentField(); f != nil {
		f.Blur()
	}
	v.selected = row
	if f := v.currentField(); f != nil {
		return f.Focus()
	}
	return nil
}

// currentField returns the field for the selected row, nil off field rows.
func (v *View) currentField() *input.Field {
	idx := v.selected - rowRootChord
	if idx >= 0 && idx < len(v.fields) {
		return v.fields[idx]
	}
	return nil
}

func (v *View) cycleStrategy() {
	all := domain.AllMeshingStrategies()
	for i, s := range all {
		if s == v.strategy {
			v.strategy = all[(i+1)%len(all)]
			return
		}
	}
	v.strategy = domain.StrategyLofted
}

// generate validates the form and starts a generation run.
func (v *View) generate() (*View, tea.Cmd) {
	if v.generating {
		return v, nil
	}
	if v.airfoil == "" {
		v.setError(fmt.Errorf("choose an airfoil before generating"))
		return v, nil
	}

	spec, opts, err := v.parameters()
	if err != nil {
		v.setError(err)
		return v, nil
	}
	if err := spec.Validate(); err != nil {
		v.setError(err)
		return v, nil
	}

	v.err = nil
	v.generating = true
	v.bar.SetState(status.StateGenerating)
	v.bar.SetMessage("")

	return v, v.generateModel(v.airfoil, spec, opts)
}

// parameters parses the form rows into a spec and pipeline options.
func (v *View) parameters() (domain.WingSpec, domain.GenerateOptions, error) {
	var spec domain.WingSpec
	var opts domain.GenerateOptions
	var err error

	if spec.RootChord, err = v.fields[fieldRootChord].Float(); err != nil {
		return spec, opts, err
	}
	if spec.SemiSpan, err = v.fields[fieldSemiSpan].Float(); err != nil {
		return spec, opts, err
	}
	if spec.SweepDeg, err = v.fields[fieldSweep].Float(); err != nil {
		return spec, opts, err
	}
	if spec.TaperRatio, err = v.fields[fieldTaper].Float(); err != nil {
		return spec, opts, err
	}
	if opts.SampleCount, err = v.fields[fieldSamples].Int(); err != nil {
		return spec, opts, err
	}
	if opts.StationCount, err = v.fields[fieldStations].Int(); err != nil {
		return spec, opts, err
	}
	opts.ThicknessFactor = v.thickness
	opts.Strategy = v.strategy

	return spec, opts, nil
}

// generateModel returns a command that runs the generation pipeline.
func (v *View) generateModel(airfoil string, spec domain.WingSpec, opts domain.GenerateOptions) tea.Cmd {
	return func() tea.Msg {
		if v.generatorService == nil {
			return messages.ModelGenerated{Err: fmt.Errorf("generator service not available")}
		}
		model, err := v.generatorService.Generate(context.Background(), airfoil, spec, opts)
		return messages.ModelGenerated{Model: model, Err: err}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(err.Error())
}

// View renders the designer form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Designer"))
	b.WriteString("\n\n")

	for row := rowAirfoil; row <= rowGenerate; row++ {
		b.WriteString(v.renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderMetrics())
	b.WriteString("\n")

	if v.lastModel != nil {
		b.WriteString("\n")
		b.WriteString(v.renderResult())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderRow(row int) string {
	indicator := "  "
	if row == v.selected {
		indicator = "> "
	}

	switch row {
	case rowAirfoil:
		label := fmt.Sprintf("%-*s", labelWidth, "Airfoil:")
		value := v.airfoil
		if value == "" {
			value = "(press enter to choose)"
		}
		line := indicator + label + " " + value
		if row == v.selected {
			return v.styles.Selected.Render(line)
		}
		if v.airfoil == "" {
			return v.styles.Muted.Render(line)
		}
		return v.styles.Normal.Render(line)

	case rowStrategy:
		label := fmt.Sprintf("%-*s", labelWidth, "Strategy:")
		line := indicator + label + " " + v.strategy.Description()
		if row == v.selected {
			return v.styles.Selected.Render(line)
		}
		return v.styles.Normal.Render(line)

	case rowGenerate:
		label := "[ Generate ]"
		if v.generating {
			label = "[ Generating... ]"
		}
		line := indicator + label
		if row == v.selected {
			return v.styles.Selected.Render(line)
		}
		return v.styles.Normal.Render(line)

	default:
		f := v.fields[row-rowRootChord]
		return indicator + f.View()
	}
}

// renderMetrics shows live planform numbers for the current parameters.
func (v *View) renderMetrics() string {
	spec, _, err := v.parameters()
	if err == nil {
		err = spec.Validate()
	}
	if err != nil {
		return v.styles.Muted.Render("Planform: enter valid parameters")
	}

	m := geometry.Metrics(spec)
	ar := "n/a"
	if m.AspectRatio != nil {
		ar = fmt.Sprintf("%.2f", *m.AspectRatio)
	}

	return v.styles.Muted.Render(fmt.Sprintf(
		"Planform: tip chord %.3f  span %.3f  area %.3f  aspect ratio %s",
		m.TipChord, m.TotalSpan, m.WingArea, ar,
	))
}

func (v *View) renderResult() string {
	m := v.lastModel
	summary := fmt.Sprintf("Generated %s (%d vertices, %d triangles)",
		filepath.Base(m.FilePath), m.VertexCount, m.TriangleCount)
	return v.styles.Success.Render(summary) + "\n" +
		v.styles.Muted.Render(m.FilePath)
}

// SetAirfoil sets the dataset airfoil the next generation will use.
func (v *View) SetAirfoil(name string) {
	v.airfoil = name
}

// Airfoil returns the selected dataset airfoil name.
func (v *View) Airfoil() string {
	return v.airfoil
}

// Strategy returns the selected meshing strategy.
func (v *View) Strategy() domain.MeshingStrategy {
	return v.strategy
}

// Selected returns the selected form row.
func (v *View) Selected() int {
	return v.selected
}

// Generating reports whether a generation run is in flight.
func (v *View) Generating() bool {
	return v.generating
}

// LastModel returns the most recently generated model, nil before the first.
func (v *View) LastModel() *domain.GeneratedModel {
	return v.lastModel
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.SetWidth(width)
}

// Reset restores the factory defaults and clears all run state.
func (v *View) Reset() {
	v.applyFactoryDefaults()
	_ = v.moveTo(rowAirfoil)
	v.airfoil = ""
	v.seeded = false
	v.generating = false
	v.lastModel = nil
	v.err = nil
	v.bar.Clear()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
