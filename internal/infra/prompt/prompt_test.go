package prompt

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSelectModel_CursorAndAccept(t *testing.T) {
	m := newSelectModel("pick one", []string{"a", "b", "c"})

	next, _ := m.Update(keyMsg(tea.KeyDown))
	m = next.(selectModel)
	next, _ = m.Update(keyMsg(tea.KeyDown))
	m = next.(selectModel)
	next, _ = m.Update(keyMsg(tea.KeyDown)) // clamped at last option
	m = next.(selectModel)
	assert.Equal(t, 2, m.cursor)

	next, _ = m.Update(keyMsg(tea.KeyUp))
	m = next.(selectModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(selectModel)
	assert.True(t, m.done)
	assert.False(t, m.aborted)
}

func TestSelectModel_VimKeys(t *testing.T) {
	m := newSelectModel("pick one", []string{"a", "b"})

	next, _ := m.Update(runeMsg('j'))
	m = next.(selectModel)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(runeMsg('k'))
	m = next.(selectModel)
	assert.Equal(t, 0, m.cursor)
}

func TestSelectModel_Abort(t *testing.T) {
	m := newSelectModel("pick one", []string{"a"})

	next, _ := m.Update(keyMsg(tea.KeyEsc))
	m = next.(selectModel)
	assert.True(t, m.aborted)
}

func TestSelectModel_View(t *testing.T) {
	m := newSelectModel("pick one", []string{"a", "b"})
	view := m.View()

	assert.Contains(t, view, "pick one")
	assert.Contains(t, view, "a")
	assert.Contains(t, view, "b")
}

func TestMultiSelectModel_ToggleAndPicks(t *testing.T) {
	m := newMultiSelectModel("pick many", []string{"a", "b", "c"})

	next, _ := m.Update(keyMsg(tea.KeySpace)) // toggle a
	m = next.(multiSelectModel)
	next, _ = m.Update(keyMsg(tea.KeyDown))
	m = next.(multiSelectModel)
	next, _ = m.Update(keyMsg(tea.KeyDown))
	m = next.(multiSelectModel)
	next, _ = m.Update(keyMsg(tea.KeySpace)) // toggle c
	m = next.(multiSelectModel)

	assert.Equal(t, []int{0, 2}, m.picks(), "picks in ascending option order")

	next, _ = m.Update(keyMsg(tea.KeySpace)) // untoggle c
	m = next.(multiSelectModel)
	assert.Equal(t, []int{0}, m.picks())

	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(multiSelectModel)
	assert.True(t, m.done)
}

func TestMultiSelectModel_EmptyPickIsLegal(t *testing.T) {
	m := newMultiSelectModel("pick many", []string{"a", "b"})

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(multiSelectModel)
	assert.True(t, m.done)
	assert.Empty(t, m.picks())
}

func TestInputModel_RejectsNonNumber(t *testing.T) {
	m := newInputModel("enter id", func(int) error { return nil })
	m.input.SetValue("abc")

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(inputModel)
	assert.False(t, m.done)
	assert.Equal(t, "Input is not a number", m.errMsg)
}

func TestInputModel_RejectsInvalidValue(t *testing.T) {
	m := newInputModel("enter id", func(v int) error {
		if v != 42 {
			return fmt.Errorf("issue cannot be found")
		}
		return nil
	})
	m.input.SetValue("7")

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(inputModel)
	require.False(t, m.done)
	assert.Equal(t, "issue cannot be found", m.errMsg)

	m.input.SetValue("42")
	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(inputModel)
	assert.True(t, m.done)
	assert.Equal(t, 42, m.value)
}

func TestInputModel_Abort(t *testing.T) {
	m := newInputModel("enter id", func(int) error { return nil })

	next, _ := m.Update(keyMsg(tea.KeyCtrlC))
	m = next.(inputModel)
	assert.True(t, m.aborted)
}

func TestConfirmModel_ExplicitAnswer(t *testing.T) {
	m := newConfirmModel("sure ?", true)

	next, _ := m.Update(runeMsg('n'))
	m = next.(confirmModel)
	assert.True(t, m.done)
	assert.False(t, m.answer)

	m = newConfirmModel("sure ?", false)
	next, _ = m.Update(runeMsg('y'))
	m = next.(confirmModel)
	assert.True(t, m.done)
	assert.True(t, m.answer)
}

func TestConfirmModel_EnterPicksDefault(t *testing.T) {
	m := newConfirmModel("sure ?", true)
	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(confirmModel)
	assert.True(t, m.answer)

	m = newConfirmModel("sure ?", false)
	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(confirmModel)
	assert.False(t, m.answer)
}

func TestConfirmModel_View_ShowsDefault(t *testing.T) {
	assert.Contains(t, newConfirmModel("sure ?", true).View(), "[Y/n]")
	assert.Contains(t, newConfirmModel("sure ?", false).View(), "[y/N]")
}
