package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	behindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	nudgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
