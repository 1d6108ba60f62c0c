package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Anchor says where a popup sits on the canvas.
type Anchor int

const (
	AnchorCenter Anchor = iota
	// AnchorBottom docks the popup to the bottom edge, like a sheet.
	AnchorBottom
)

// Card wraps content in the popup chrome.
func Card(content string, border lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}

// RenderPopup composites popup over base inside a width x height canvas.
// Cells of base not covered by the popup are kept.
func RenderPopup(base, popup string, width, height int, anchor Anchor) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	popupLines := splitToLines(popup, 0)
	popupWidth := maxLineWidth(popupLines)
	popupHeight := len(popupLines)
	if popupWidth <= 0 || popup == "" {
		return baseCanvas
	}
	x := (width - popupWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - popupHeight) / 2
	if anchor == AnchorBottom {
		y = height - popupHeight
	}
	if y < 0 {
		y = 0
	}
	return overlayAt(baseCanvas, popup, x, y, width, height)
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if leftWidth := ansi.StringWidth(left); leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if pos < width {
			right = ansi.TruncateLeft(target, pos, "")
		}
		baseLines[row] = padRightANSI(left+overlayLine+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
