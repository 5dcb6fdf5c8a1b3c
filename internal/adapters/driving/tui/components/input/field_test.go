package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Root chord", "2.0")

	require.NotNil(t, f)
	assert.Equal(t, "Root chord", f.Label())
	assert.Equal(t, "", f.Value())
	assert.False(t, f.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "Root chord", "")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
}

func TestField_Init(t *testing.T) {
	f := NewField(nil, "Root chord", "")

	cmd := f.Init()

	assert.NotNil(t, cmd)
}

func TestField_SetValue(t *testing.T) {
	f := NewField(nil, "Root chord", "")

	f.SetValue("2.5")

	assert.Equal(t, "2.5", f.Value())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(nil, "Root chord", "")

	cmd := f.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_Update_TypesIntoFocusedInput(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})

	assert.Equal(t, "3.5", f.Value())
}

func TestField_Update_IgnoresKeysWhenBlurred(t *testing.T) {
	f := NewField(nil, "Root chord", "")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

	assert.Equal(t, "", f.Value())
}

func TestField_Float(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.SetValue("2.5")

	v, err := f.Float()

	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-12)
}

func TestField_Float_TrimsWhitespace(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.SetValue("  -5.0 ")

	v, err := f.Float()

	require.NoError(t, err)
	assert.InDelta(t, -5.0, v, 1e-12)
}

func TestField_Float_Invalid(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.SetValue("abc")

	_, err := f.Float()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid root chord")
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestField_Int(t *testing.T) {
	f := NewField(nil, "Samples", "")
	f.SetValue("120")

	v, err := f.Int()

	require.NoError(t, err)
	assert.Equal(t, 120, v)
}

func TestField_Int_Invalid(t *testing.T) {
	f := NewField(nil, "Samples", "")
	f.SetValue("12.5")

	_, err := f.Int()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid samples")
}

func TestField_Reset(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.SetValue("2.5")

	f.Reset()

	assert.Equal(t, "", f.Value())
}

func TestField_View_ShowsLabelAndValue(t *testing.T) {
	f := NewField(nil, "Root chord", "")
	f.SetValue("2.0")

	view := f.View()

	assert.Contains(t, view, "Root chord:")
	assert.Contains(t, view, "2.0")
}
