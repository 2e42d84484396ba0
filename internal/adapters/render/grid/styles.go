package grid

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	slot       lipgloss.Style
	room       lipgloss.Style
	session    lipgloss.Style
	meta       lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	relaxation lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		slot:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		room:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35")),
		session:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		relaxation: lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
	}
}
