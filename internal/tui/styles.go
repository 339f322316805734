package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorNavy   = lipgloss.Color("#1F2A44")
	ColorWhite  = lipgloss.Color("#F0F6FC")
	ColorBlue   = lipgloss.Color("#58A6FF")
	ColorGray   = lipgloss.Color("240")
	ColorAccent = lipgloss.Color("#00CAC7")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorNavy).
			Padding(0, 1)

	dividerStyle = lipgloss.NewStyle().Foreground(ColorGray)

	axisStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	activeAxisStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorNavy).
			Background(ColorAccent).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	helpStyle       = lipgloss.NewStyle().Foreground(ColorGray)
)
