package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the picker draws with.
const (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorSubtle   lipgloss.Color = "#7f849c"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorMantle   lipgloss.Color = "#181825"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorFocus    lipgloss.Color = "#b4befe"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorWarning  lipgloss.Color = "#f9e2af"
	ColorError    lipgloss.Color = "#f38ba8"
)

// RowBackground picks a row fill from its selected/cursor state. The second
// result says whether the row should be drawn bold.
func RowBackground(selected, isCursor bool) (lipgloss.Color, bool) {
	switch {
	case isCursor && selected:
		return ColorAccent, true
	case isCursor:
		return ColorSurface1, true
	case selected:
		return ColorSurface0, false
	default:
		return "", false
	}
}
