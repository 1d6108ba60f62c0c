package screens

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/currencypicker/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(core.ColorText).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(core.ColorMuted)
	subtleStyle   = lipgloss.NewStyle().Foreground(core.ColorSubtle)
	ruleStyle     = lipgloss.NewStyle().Foreground(core.ColorBorder)
	symbolStyle   = lipgloss.NewStyle().Foreground(core.ColorMuted).Width(symbolWidth).Align(lipgloss.Center)
	codeStyle     = lipgloss.NewStyle().Foreground(core.ColorText).Bold(true)
	nameStyle     = lipgloss.NewStyle().Foreground(core.ColorMuted)
	checkStyle    = lipgloss.NewStyle().Foreground(core.ColorAccent).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(core.ColorWarning)
	keyStyle      = lipgloss.NewStyle().Foreground(core.ColorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(core.ColorMuted)
)
