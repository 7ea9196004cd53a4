package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// multiSelectModel is the bubbletea model for multi-choice selection.
type multiSelectModel struct {
	selected map[int]bool
	label    string
	options  []string
	keys     keyMap
	styles   Styles
	cursor   int
	done     bool
	aborted  bool
}

func newMultiSelectModel(label string, options []string) multiSelectModel {
	return multiSelectModel{
		selected: make(map[int]bool),
		label:    label,
		options:  options,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
	}
}

// picks returns the selected indexes in ascending option order.
func (m multiSelectModel) picks() []int {
	var picks []int
	for i := range m.options {
		if m.selected[i] {
			picks = append(picks, i)
		}
	}
	return picks
}

// Init implements tea.Model.
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.options) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(keyMsg, m.keys.Accept):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m multiSelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.label))
	b.WriteString("\n")
	for i, option := range m.options {
		mark := "[ ]"
		line := mark + " " + option
		if m.selected[i] {
			line = m.styles.Selected.Render("[x] " + option)
		}
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • space toggle • enter accept • esc cancel"))
	b.WriteString("\n")
	return b.String()
}
