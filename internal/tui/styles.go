package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	cursor       lipgloss.Style
	completed    lipgloss.Style
	high         lipgloss.Style
	activeFilter lipgloss.Style
	dim          lipgloss.Style
	status       lipgloss.Style
	err          lipgloss.Style
	confirm      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		completed:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		high:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		activeFilter: lipgloss.NewStyle().Bold(true).Underline(true),
		dim:          lipgloss.NewStyle().Faint(true),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		err:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		confirm:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
