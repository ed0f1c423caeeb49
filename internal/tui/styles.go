package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	dropZoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	dropZoneActiveStyle = dropZoneStyle.BorderForeground(lipgloss.Color("39"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(1)
	cardValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cardDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	healthReadyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	healthDegradedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	healthDownStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
