package preview

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("99")
	mutedColor  = lipgloss.Color("245")
	errorColor  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			MarginTop(1)
)
