// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui/styles"
)

// NameList displays a navigable, windowed list of names.
// The airfoil dataset carries over a thousand entries, so only the
// window around the selection is rendered.
type NameList struct {
	names    []string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewNameList creates a new name list component.
func NewNameList(s *styles.Styles) *NameList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &NameList{
		names:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the name list.
func (l *NameList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *NameList) Update(msg tea.Msg) (*NameList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "pgup":
			l.PageUp()
		case "pgdown":
			l.PageDown()
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *NameList) View() string {
	if len(l.names) == 0 {
		return l.styles.Muted.Render("No entries")
	}

	visible := l.visibleRows()

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.names) {
		end = len(l.names)
	}

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderName(i))
	}

	// Position indicator when the list does not fit
	if len(l.names) > visible {
		position := fmt.Sprintf("%d/%d", l.selected+1, len(l.names))
		lines = append(lines, l.styles.Muted.Render(position))
	}

	return strings.Join(lines, "\n")
}

// renderName formats a single list entry.
func (l *NameList) renderName(index int) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := l.names[index]
	maxLen := l.width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	if len(name) > maxLen {
		name = name[:maxLen-3] + "..."
	}

	if index == l.selected {
		return l.styles.Selected.Render(indicator + name)
	}
	return l.styles.Normal.Render(indicator) + l.styles.Normal.Render(name)
}

// visibleRows returns how many entries fit in the current height.
func (l *NameList) visibleRows() int {
	visible := l.height - 1
	if visible < 1 {
		visible = 1
	}
	return visible
}

// SetNames replaces the list contents and resets the selection.
func (l *NameList) SetNames(names []string) {
	l.names = names
	l.selected = 0
}

// Names returns the current names.
func (l *NameList) Names() []string {
	return l.names
}

// Selected returns the index of the selected entry.
func (l *NameList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *NameList) SetSelected(index int) {
	if index >= 0 && index < len(l.names) {
		l.selected = index
	}
}

// SelectedName returns the currently selected name, or "" if the list is empty.
func (l *NameList) SelectedName() string {
	if len(l.names) == 0 || l.selected < 0 || l.selected >= len(l.names) {
		return ""
	}
	return l.names[l.selected]
}

// MoveUp moves selection up.
func (l *NameList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *NameList) MoveDown() {
	if l.selected < len(l.names)-1 {
		l.selected++
	}
}

// PageUp moves selection up by one window.
func (l *NameList) PageUp() {
	l.selected -= l.visibleRows()
	if l.selected < 0 {
		l.selected = 0
	}
}

// PageDown moves selection down by one window.
func (l *NameList) PageDown() {
	l.selected += l.visibleRows()
	if l.selected > len(l.names)-1 {
		l.selected = len(l.names) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// SetDimensions sets the component dimensions.
func (l *NameList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *NameList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *NameList) Height() int {
	return l.height
}

// Count returns the number of entries.
func (l *NameList) Count() int {
	return len(l.names)
}

// IsEmpty returns whether the list is empty.
func (l *NameList) IsEmpty() bool {
	return len(l.names) == 0
}
