package cmd

import "github.com/charmbracelet/lipgloss"

var (
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)
