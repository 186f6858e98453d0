package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the form uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	labelStyle    = lipgloss.NewStyle().Foreground(colorText).Width(7)
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	formStyle     = lipgloss.NewStyle().Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 2)
	buttonFocusStyle = buttonStyle.
				Foreground(colorBase).
				Background(colorFocus)

	dialogTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	dialogButtonStyle = buttonFocusStyle
	dialogCardStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorError).
				Padding(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)
