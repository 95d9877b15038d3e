package cmd

import "charm.land/lipgloss/v2"

// Terminal styles for the command output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E11D48")) // Rose

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	masteredStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Amber
)
