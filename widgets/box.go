package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	if b.Title == "" {
		return style.Render(b.Content)
	}
	return style.Render("[" + b.Title + "]\n" + b.Content)
}

// Text renders pre-styled content clipped to its slot.
type Text string

func (t Text) Render(width, height int) string {
	lines := splitToLines(string(t), height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
