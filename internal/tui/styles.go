package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorTour    lipgloss.Color = "#f9e2af"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorTabOff  lipgloss.Color = "#7f849c"
	colorSurface lipgloss.Color = "#313244"
	colorMantle  lipgloss.Color = "#181825"
)

var (
	headerAppStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Background(colorSurface).Foreground(colorAccent).Bold(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorTabOff).Padding(0, 1)
	phaseStyle       = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)
	paneTitleStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	tourFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorTour)
	calloutTitleStyle = lipgloss.NewStyle().Foreground(colorTour).Bold(true)
	calloutBodyStyle  = lipgloss.NewStyle().Foreground(colorText)
	calloutMetaStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
)
