package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is the bubbletea model for single-choice selection.
type selectModel struct {
	label   string
	options []string
	keys    keyMap
	styles  Styles
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(label string, options []string) selectModel {
	return selectModel{
		label:   label,
		options: options,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
	}
}

// Init implements tea.Model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.label))
	b.WriteString("\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + option))
		} else {
			b.WriteString("  " + option)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}
