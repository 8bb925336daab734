package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	colorBlue     lipgloss.Color = "#89b4fa"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorSky      lipgloss.Color = "#89dceb"
	colorPeach    lipgloss.Color = "#fab387"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

// stageColors maps the catalog's color names onto the palette.
var stageColors = map[string]lipgloss.Color{
	"blue":    colorBlue,
	"amber":   colorYellow,
	"purple":  colorMauve,
	"pink":    colorPink,
	"indigo":  colorLavender,
	"cyan":    colorSky,
	"orange":  colorPeach,
	"teal":    colorTeal,
	"rose":    colorRed,
	"emerald": colorGreen,
}

func stageColor(name string) lipgloss.Color {
	if c, ok := stageColors[name]; ok {
		return c
	}
	return colorText
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	metricStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	clearStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	savingStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	savedStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	helpStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	selectedCard = cardStyle.BorderForeground(colorLavender)
	draggedCard  = cardStyle.BorderForeground(colorPeach).Faint(true)
	columnStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(colorSurface0).PaddingRight(1)
	targetColumn = columnStyle.BorderForeground(colorPeach)
)
