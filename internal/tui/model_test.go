package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/backend/memstore"
	"todo/internal/service"
	"todo/internal/testutil"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func newModel(t *testing.T) (Model, *memstore.Store) {
	t.Helper()
	s := testutil.NewSeededStore(t)
	return New(s, service.PriorityMedium), s
}

func TestView_ShowsSeededTasksAndCounters(t *testing.T) {
	m, _ := newModel(t)

	view := m.View()

	assert.Contains(t, view, "   1  [ ] high    Create project proposal  (added 3/9/2026)")
	assert.Contains(t, view, "   2  [x] medium  Buy groceries  (added 3/9/2026)")
	assert.Contains(t, view, "   4  [ ] low     Read JavaScript documentation  (added 3/9/2026)")
	assert.Contains(t, view, "total: 4  completed: 1  high priority: 1  pending: 3")
	assert.Contains(t, view, "priority: medium")
}

func TestAdd_EnterAddsWithSelectedPriority(t *testing.T) {
	m, s := newModel(t)

	m = send(m, tabKey, runes("Write tests"), enterKey)

	tasks := s.Tasks()
	require.Len(t, tasks, 5)
	assert.Equal(t, "Write tests", tasks[4].Text)
	assert.Equal(t, service.PriorityLow, tasks[4].Priority)
	assert.False(t, tasks[4].Completed)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "   5  [ ] low     Write tests")
	assert.Contains(t, m.View(), "total: 5  completed: 1  high priority: 1  pending: 4")
}

func TestAdd_EmptyTextShowsError(t *testing.T) {
	m, s := newModel(t)

	m = send(m, runes("   "), enterKey)

	assert.Equal(t, 4, s.Stats().Total)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "task text required")
}

func TestAdd_LongTextKeptWhole(t *testing.T) {
	m, s := newModel(t)
	text := strings.Repeat("a", 300)

	m = send(m, runes(text), enterKey)

	require.Len(t, s.Tasks(), 5)
	assert.Equal(t, text, s.Tasks()[4].Text)
	assert.False(t, m.statusErr)
}

func TestInput_TypedKeysDoNotTriggerListActions(t *testing.T) {
	m, s := newModel(t)

	m = send(m, runes("q"), runes("d"), runes("m"), spaceKey)

	assert.Equal(t, service.Stats{Total: 4, Completed: 1, HighPriority: 1, Pending: 3}, s.Stats())
	assert.Equal(t, "qdm ", m.input.Value())
	assert.Equal(t, focusInput, m.focus)
}

func TestList_ToggleSelectedTask(t *testing.T) {
	m, s := newModel(t)

	m = send(m, escKey, runes("j"), spaceKey)

	assert.False(t, s.Tasks()[1].Completed)
	assert.Contains(t, m.View(), ">   2  [ ] medium  Buy groceries")

	m = send(m, runes("k"), runes("x"))
	assert.True(t, s.Tasks()[0].Completed)
}

func TestList_CursorStaysInRange(t *testing.T) {
	m, _ := newModel(t)

	m = send(m, escKey, runes("k"), runes("k"))
	assert.Equal(t, 0, m.cursor)

	m = send(m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 3, m.cursor)
}

func TestList_DeleteRequiresConfirmation(t *testing.T) {
	m, s := newModel(t)

	m = send(m, escKey, runes("d"))
	assert.Contains(t, m.View(), "Are you sure you want to delete task 1 (Create project proposal)? [y/N]")
	assert.Equal(t, 4, s.Stats().Total)

	m = send(m, runes("n"))
	assert.Equal(t, 4, s.Stats().Total)
	assert.Contains(t, m.View(), "delete cancelled")

	m = send(m, runes("d"), enterKey)
	assert.Equal(t, 4, s.Stats().Total, "only y confirms")

	m = send(m, runes("d"), runes("y"))
	assert.Equal(t, 3, s.Stats().Total)
	assert.Equal(t, "Buy groceries", s.Tasks()[0].Text)
	assert.Contains(t, m.View(), "deleted task 1")
}

func TestList_DeleteLastRowMovesCursor(t *testing.T) {
	m, s := newModel(t)

	m = send(m, escKey, runes("j"), runes("j"), runes("j"), runes("d"), runes("y"))

	assert.Equal(t, 3, s.Stats().Total)
	assert.Equal(t, 2, m.cursor)
}

func TestList_BulkOperations(t *testing.T) {
	m, s := newModel(t)

	m = send(m, escKey, runes("m"))
	assert.Equal(t, 0, s.Stats().Pending)

	m = send(m, runes("u"))
	assert.Equal(t, 0, s.Stats().Completed)

	m = send(m, runes("k"), spaceKey, runes("c"))
	assert.Equal(t, 3, s.Stats().Total)
	assert.Equal(t, 0, s.Stats().Completed)
	assert.Contains(t, m.View(), "cleared completed tasks")
}

func TestList_FilterCycleKeepsNumbers(t *testing.T) {
	m, _ := newModel(t)

	m = send(m, escKey, runes("f"))
	assert.Equal(t, service.FilterHighPriority, m.filter)
	view := m.View()
	assert.Contains(t, view, "   1  [ ] high    Create project proposal")
	assert.NotContains(t, view, "Buy groceries")

	m = send(m, runes("f"), runes("f"))
	assert.Equal(t, service.FilterCompleted, m.filter)
	view = m.View()
	assert.Contains(t, view, "   2  [x] medium  Buy groceries")
	assert.NotContains(t, view, "Create project proposal")

	m = send(m, runes("f"))
	assert.Equal(t, service.FilterAll, m.filter)
}

func TestList_ToggleUnderFilterActsOnVisibleRow(t *testing.T) {
	m, s := newModel(t)

	// completed filter: only "Buy groceries" is visible
	m = send(m, escKey, runes("f"), runes("f"), runes("f"), spaceKey)

	assert.False(t, s.Tasks()[1].Completed)
	assert.Contains(t, m.View(), "no tasks match your filter")
}

func TestList_PriorityAndFocusKeys(t *testing.T) {
	m, s := newModel(t)

	m = send(m, escKey, runes("p"))
	assert.Equal(t, service.PriorityLow, m.priority)

	m = send(m, runes("a"), runes("Call mom"), enterKey)
	assert.Equal(t, focusInput, m.focus)
	assert.Equal(t, service.PriorityLow, s.Tasks()[4].Priority)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)

	_, cmd := m.Update(ctrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = send(m, escKey)
	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNext(t *testing.T) {
	assert.Equal(t, service.PriorityMedium, next(priorityCycle, service.PriorityHigh))
	assert.Equal(t, service.PriorityHigh, next(priorityCycle, service.PriorityLow))
	assert.Equal(t, service.PriorityHigh, next(priorityCycle, service.Priority("urgent")))
}
