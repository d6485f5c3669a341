package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the terminal UI reacts to.
type keyMap struct {
	// input focus
	Submit       key.Binding
	NextPriority key.Binding
	LeaveInput   key.Binding

	// list focus
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Clear     key.Binding
	MarkAll   key.Binding
	UnmarkAll key.Binding
	Filter    key.Binding
	Priority  key.Binding
	EnterText key.Binding
	Quit      key.Binding

	// delete confirmation
	Confirm key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		NextPriority: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "priority"),
		),
		LeaveInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go to list"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear completed"),
		),
		MarkAll: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark all"),
		),
		UnmarkAll: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark all"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		EnterText: key.NewBinding(
			key.WithKeys("a", "i", "tab"),
			key.WithHelp("a", "new task"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextPriority, k.LeaveInput}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Toggle, k.Delete, k.Clear,
		k.MarkAll, k.UnmarkAll, k.Filter, k.Priority, k.EnterText, k.Quit,
	}
}
