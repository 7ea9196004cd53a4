package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is the bubbletea model for validated numeric input.
// Enter re-validates; the model only finishes on an accepted value.
type inputModel struct {
	validate func(int) error
	input    textinput.Model
	label    string
	errMsg   string
	keys     keyMap
	styles   Styles
	value    int
	done     bool
	aborted  bool
}

func newInputModel(label string, validate func(int) error) inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 16
	return inputModel{
		validate: validate,
		input:    ti,
		label:    label,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
	}
}

// Init implements tea.Model.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Accept):
			value, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.errMsg = "Input is not a number"
				return m, nil
			}
			if err := m.validate(value); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
