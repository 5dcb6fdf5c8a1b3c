// Package input provides text input components for the TUI.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
)

// labelWidth aligns the form labels in the designer.
const labelWidth = 14

// Field wraps a bubbles textinput with a label and numeric parsing.
type Field struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
}

// NewField creates a new labelled input field.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 12
	ti.Prompt = ""

	return &Field{
		label:     label,
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the labelled field on one line.
func (f *Field) View() string {
	label := f.styles.Normal.Render(fmt.Sprintf("%-*s", labelWidth, f.label+":"))
	return label + " " + f.textinput.View()
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Float parses the value as a float64.
func (f *Field) Float() (float64, error) {
	raw := strings.TrimSpace(f.textinput.Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", strings.ToLower(f.label), raw)
	}
	return v, nil
}

// Int parses the value as an int.
func (f *Field) Int() (int, error) {
	raw := strings.TrimSpace(f.textinput.Value())
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", strings.ToLower(f.label), raw)
	}
	return v, nil
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}
