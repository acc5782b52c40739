package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	statsLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statsMidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	statsFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

// statsStyle picks the color threshold for the day's completion percentage.
func statsStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= 1:
		return statsFullStyle
	case percent >= 0.5:
		return statsMidStyle
	default:
		return statsLowStyle
	}
}
