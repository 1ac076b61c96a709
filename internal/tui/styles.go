package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("174"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")).
			Bold(true)
)
