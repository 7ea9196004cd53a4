// Package prompt implements the interactive input collaborators as
// small bubbletea programs, one per prompt shape.
package prompt

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/remip/gitlab-roulette/internal/domain"
)

// Ensure Prompter implements domain.Prompter.
var _ domain.Prompter = (*Prompter)(nil)

// Prompter runs one bubbletea program per prompt. A cancelled prompt
// (esc / ctrl+c) returns domain.ErrAborted.
type Prompter struct {
	opts []tea.ProgramOption
}

// New creates a Prompter using the terminal.
func New() *Prompter {
	return &Prompter{}
}

// NewWithOptions creates a Prompter with custom program options.
// This is useful for testing with redirected input and output.
func NewWithOptions(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{opts: opts}
}

// SelectOne presents options and returns the index of the pick.
func (p *Prompter) SelectOne(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to select from")
	}

	final, err := tea.NewProgram(newSelectModel(label, options), p.opts...).Run()
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.aborted {
		return 0, domain.ErrAborted
	}
	return m.cursor, nil
}

// SelectMany presents options and returns the indexes of all picks.
func (p *Prompter) SelectMany(label string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newMultiSelectModel(label, options), p.opts...).Run()
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.aborted {
		return nil, domain.ErrAborted
	}
	return m.picks(), nil
}

// InputNumber reads a number, re-prompting until validate accepts it.
func (p *Prompter) InputNumber(label string, validate func(int) error) (int, error) {
	final, err := tea.NewProgram(newInputModel(label, validate), p.opts...).Run()
	if err != nil {
		return 0, err
	}
	m := final.(inputModel)
	if m.aborted {
		return 0, domain.ErrAborted
	}
	return m.value, nil
}

// Confirm asks a yes/no question; enter picks the default.
func (p *Prompter) Confirm(label string, defaultYes bool) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(label, defaultYes), p.opts...).Run()
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, domain.ErrAborted
	}
	return m.answer, nil
}
