package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is the bubbletea model for yes/no confirmation.
type confirmModel struct {
	label      string
	keys       keyMap
	styles     Styles
	defaultYes bool
	answer     bool
	done       bool
	aborted    bool
}

func newConfirmModel(label string, defaultYes bool) confirmModel {
	return confirmModel{
		label:      label,
		keys:       defaultKeyMap(),
		styles:     defaultStyles(),
		defaultYes: defaultYes,
	}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.answer = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No):
		m.answer = false
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Accept):
		m.answer = m.defaultYes
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	hint := "[y/N]"
	if m.defaultYes {
		hint = "[Y/n]"
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.styles.Help.Render(hint))
	b.WriteString("\n")
	return b.String()
}
