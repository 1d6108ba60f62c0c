package widgets

import "github.com/charmbracelet/lipgloss"

// Selector is the always-visible button that shows the active currency code.
type Selector struct {
	Code    string
	Open    bool
	Focused bool
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Focus   lipgloss.TerminalColor
}

func (s Selector) Render() string {
	chevron := "▾"
	if s.Open {
		chevron = "▴"
	}
	code := s.Code
	if code == "" {
		code = "---"
	}
	border := s.Border
	if s.Focused && s.Focus != nil {
		border = s.Focus
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if border != nil {
		style = style.BorderForeground(border)
	}
	codeStyle := lipgloss.NewStyle().Bold(true)
	if s.Text != nil {
		codeStyle = codeStyle.Foreground(s.Text)
	}
	return style.Render(codeStyle.Render(code) + " " + chevron)
}
