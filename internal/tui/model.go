// Package tui implements a full-screen terminal interface over a task store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"todo/internal/output"
	"todo/internal/service"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

var filterCycle = []service.Filter{
	service.FilterAll,
	service.FilterHighPriority,
	service.FilterActive,
	service.FilterCompleted,
}

var priorityCycle = []service.Priority{
	service.PriorityHigh,
	service.PriorityMedium,
	service.PriorityLow,
}

// Model is the bubbletea model for the task list.
// Tasks live in the store; the model holds only view state and re-reads
// the store on every render.
type Model struct {
	svc    service.Service
	keys   keyMap
	styles styles
	input  textinput.Model
	help   help.Model

	focus    focus
	priority service.Priority
	filter   service.Filter
	cursor   int

	// pending is the task awaiting delete confirmation.
	pending *output.NumberedTask

	status    string
	statusErr bool
}

// New creates a model over svc. Added tasks get priority until the user
// picks another one.
func New(svc service.Service, priority service.Priority) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = 50
	ti.Focus()

	return Model{
		svc:      svc,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
		input:    ti,
		help:     help.New(),
		focus:    focusInput,
		priority: priority,
		filter:   service.FilterAll,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - 30; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.pending != nil {
			return m.updateConfirm(msg), nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.add()
		return m, nil
	case key.Matches(msg, m.keys.NextPriority):
		m.priority = next(priorityCycle, m.priority)
		return m, nil
	case key.Matches(msg, m.keys.LeaveInput):
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(rows); ok {
			m.svc.Toggle(r.Task.ID)
			m.setStatus(fmt.Sprintf("toggled task %d", r.Num))
		}
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(rows); ok {
			m.pending = &r
		}
	case key.Matches(msg, m.keys.Clear):
		m.svc.ClearCompleted()
		m.setStatus("cleared completed tasks")
	case key.Matches(msg, m.keys.MarkAll):
		m.svc.MarkAllComplete()
		m.setStatus("marked all tasks completed")
	case key.Matches(msg, m.keys.UnmarkAll):
		m.svc.MarkAllIncomplete()
		m.setStatus("marked all tasks active")
	case key.Matches(msg, m.keys.Filter):
		m.filter = next(filterCycle, m.filter)
		m.cursor = 0
	case key.Matches(msg, m.keys.Priority):
		m.priority = next(priorityCycle, m.priority)
	case key.Matches(msg, m.keys.EnterText):
		m.focus = focusInput
		return m, m.input.Focus()
	}

	m.clampCursor()
	return m, nil
}

// updateConfirm resolves a pending delete. Anything but an explicit yes
// keeps the task.
func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	r := *m.pending
	m.pending = nil

	if key.Matches(msg, m.keys.Confirm) {
		m.svc.Delete(r.Task.ID)
		m.setStatus(fmt.Sprintf("deleted task %d", r.Num))
	} else {
		m.setStatus("delete cancelled")
	}
	m.clampCursor()
	return m
}

func (m *Model) add() {
	task, err := m.svc.Add(m.input.Value(), m.priority)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			m.setError(verr.Reason)
		} else {
			m.setError(err.Error())
		}
		return
	}
	m.input.Reset()
	m.setStatus(fmt.Sprintf("added %q", task.Text))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// rows returns the tasks shown under the current filter, numbered by
// their position in the full list.
func (m Model) rows() []output.NumberedTask {
	return output.Number(m.svc.Tasks(), m.svc.Filter(m.filter))
}

func (m Model) selected(rows []output.NumberedTask) (output.NumberedTask, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return output.NumberedTask{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("todo"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(m.styles.dim.Render("priority:"))
	b.WriteString(" " + string(m.priority))
	b.WriteString("\n\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.dim.Render(output.NoMatches))
		b.WriteString("\n")
	}
	for i, r := range rows {
		b.WriteString(m.renderRow(r, m.focus == focusList && i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	output.FormatStats(&b, m.svc.Stats())

	switch {
	case m.pending != nil:
		q := fmt.Sprintf("Are you sure you want to delete task %d (%s)? [y/N]", m.pending.Num, m.pending.Task.Text)
		b.WriteString(m.styles.confirm.Render(q))
		b.WriteString("\n")
	case m.status != "":
		style := m.styles.status
		if m.statusErr {
			style = m.styles.err
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	bindings := m.keys.listHelp()
	if m.focus == focusInput {
		bindings = m.keys.inputHelp()
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(bindings))
	b.WriteString("\n")
	return b.String()
}

func (m Model) filterBar() string {
	parts := make([]string, 0, len(filterCycle))
	for _, f := range filterCycle {
		if f == m.filter {
			parts = append(parts, m.styles.activeFilter.Render(string(f)))
		} else {
			parts = append(parts, m.styles.dim.Render(string(f)))
		}
	}
	return "filter: " + strings.Join(parts, " | ")
}

// renderRow reuses the CLI task line so both interfaces number and
// describe tasks identically.
func (m Model) renderRow(r output.NumberedTask, selected bool) string {
	var line strings.Builder
	output.FormatTask(&line, r.Num, r.Task)
	text := strings.TrimRight(line.String(), "\n")

	switch {
	case r.Task.Completed:
		text = m.styles.completed.Render(text)
	case r.Task.Priority == service.PriorityHigh:
		text = m.styles.high.Render(text)
	}

	if selected {
		return m.styles.cursor.Render(">") + text
	}
	return " " + text
}

// next returns the element after cur in cycle, wrapping around.
// Values not in cycle start over at the first element.
func next[T comparable](cycle []T, cur T) T {
	for i, v := range cycle {
		if v == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
