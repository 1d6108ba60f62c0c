package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/currencypicker/core"
	"github.com/jask/currencypicker/widgets"
)

const (
	defaultTitle    = "Select Currency"
	placeholderText = "Search currencies"
	symbolWidth     = 4
	codeWidth       = 4
	defaultRowWidth = 44
	minRowWidth     = 28
	maxRowWidth     = 60
	// Lines the overlay spends on chrome: border, header, search, rules,
	// position line and footer.
	overlayChromeLines = 9
	minPageSize        = 3
)

type Option func(*CurrencyPicker)

func WithKeyMap(k core.KeyMap) Option {
	return func(c *CurrencyPicker) { c.keys = k }
}

// WithPageSize caps how many rows the overlay lists at once.
func WithPageSize(n int) Option {
	return func(c *CurrencyPicker) {
		if n >= minPageSize {
			c.maxRows = n
		}
	}
}

func WithTitle(title string) Option {
	return func(c *CurrencyPicker) {
		if t := strings.TrimSpace(title); t != "" {
			c.title = t
		}
	}
}

func WithAnchor(a widgets.Anchor) Option {
	return func(c *CurrencyPicker) { c.anchor = a }
}

// CurrencyPicker is the selector button plus its picker overlay. The caller
// owns the currency list, the selected currency and onSelect; the component
// keeps only overlay visibility, the query and the row cursor.
type CurrencyPicker struct {
	picker   *core.Picker
	input    textinput.Model
	keys     core.KeyMap
	onSelect func(core.Currency)
	title    string
	anchor   widgets.Anchor
	focused  bool
	maxRows  int
	rowWidth int
}

func NewCurrencyPicker(currencies []core.Currency, selected core.Currency, onSelect func(core.Currency), opts ...Option) *CurrencyPicker {
	input := textinput.New()
	input.Placeholder = placeholderText
	input.Prompt = "/ "
	input.PromptStyle = subtleStyle
	input.PlaceholderStyle = subtleStyle
	input.TextStyle = lipgloss.NewStyle().Foreground(core.ColorText)

	c := &CurrencyPicker{
		picker:   core.NewPicker(currencies, selected),
		input:    input,
		keys:     core.DefaultKeyMap(),
		onSelect: onSelect,
		title:    defaultTitle,
		anchor:   widgets.AnchorBottom,
		focused:  true,
		maxRows:  core.DefaultPageSize,
		rowWidth: defaultRowWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.picker.SetPageSize(c.maxRows)
	c.fitInput()
	return c
}

func (c *CurrencyPicker) Init() tea.Cmd { return nil }

func (c *CurrencyPicker) IsOpen() bool { return c.picker.Visible() }

func (c *CurrencyPicker) Query() string { return c.picker.Query() }

func (c *CurrencyPicker) Selected() core.Currency { return c.picker.Selected() }

func (c *CurrencyPicker) Filtered() []core.Currency { return c.picker.Filtered() }

func (c *CurrencyPicker) Cursor() int { return c.picker.Cursor() }

func (c *CurrencyPicker) Keys() core.KeyMap { return c.keys }

func (c *CurrencyPicker) Focused() bool { return c.focused }

// Focus lets the closed selector react to its open keys.
func (c *CurrencyPicker) Focus() { c.focused = true }

func (c *CurrencyPicker) Blur() { c.focused = false }

// SetCurrencies is how the owner pushes a new list.
func (c *CurrencyPicker) SetCurrencies(currencies []core.Currency) {
	c.picker.SetCurrencies(currencies)
}

// SetSelected is how the owner pushes a new selection, usually from inside
// its onSelect callback.
func (c *CurrencyPicker) SetSelected(selected core.Currency) {
	c.picker.SetSelected(selected)
}

// Open shows the overlay and focuses the search field.
func (c *CurrencyPicker) Open() tea.Cmd {
	if res := c.picker.Open(); res.Action != core.PickerActionOpened {
		return nil
	}
	c.input.Reset()
	return c.input.Focus()
}

// Dismiss hides the overlay without selecting and clears the query.
func (c *CurrencyPicker) Dismiss() {
	c.picker.Dismiss()
	c.resetInput()
}

func (c *CurrencyPicker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.resize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if !c.picker.Visible() {
			if c.focused && key.Matches(msg, c.keys.Open) {
				return c.Open()
			}
			return nil
		}
		return c.handleOverlayKey(msg)
	}
	if !c.picker.Visible() {
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *CurrencyPicker) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Dismiss):
		c.Dismiss()
		return nil
	case key.Matches(msg, c.keys.Select):
		if res := c.picker.Select(c.onSelect); res.Action == core.PickerActionSelected {
			c.resetInput()
		}
		return nil
	case key.Matches(msg, c.keys.Up):
		c.picker.CursorUp()
		return nil
	case key.Matches(msg, c.keys.Down):
		c.picker.CursorDown()
		return nil
	case key.Matches(msg, c.keys.PageUp):
		c.picker.PageUp()
		return nil
	case key.Matches(msg, c.keys.PageDown):
		c.picker.PageDown()
		return nil
	case key.Matches(msg, c.keys.Home):
		c.picker.Home()
		return nil
	case key.Matches(msg, c.keys.End):
		c.picker.End()
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.picker.SetQuery(c.input.Value())
	return cmd
}

func (c *CurrencyPicker) resetInput() {
	c.input.Reset()
	c.input.Blur()
}

func (c *CurrencyPicker) fitInput() {
	c.input.Width = max(1, c.rowWidth-lipgloss.Width(c.input.Prompt)-1)
}

func (c *CurrencyPicker) resize(width, height int) {
	if width > 0 {
		c.rowWidth = min(maxRowWidth, max(minRowWidth, width-8))
		c.fitInput()
	}
	if height > 0 {
		c.picker.SetPageSize(min(c.maxRows, max(minPageSize, height-overlayChromeLines)))
	}
}

// ButtonView renders the always-visible selector.
func (c *CurrencyPicker) ButtonView() string {
	return widgets.Selector{
		Code:    c.picker.Selected().Code,
		Open:    c.picker.Visible(),
		Focused: c.focused,
		Text:    core.ColorText,
		Border:  core.ColorBorder,
		Focus:   core.ColorFocus,
	}.Render()
}

// View composites the overlay over base when it is open. base is returned
// untouched while the picker is closed.
func (c *CurrencyPicker) View(base string, width, height int) string {
	if !c.picker.Visible() {
		return base
	}
	return widgets.RenderPopup(base, c.OverlayView(), width, height, c.anchor)
}

// OverlayView renders the picker card alone, or "" while closed.
func (c *CurrencyPicker) OverlayView() string {
	if !c.picker.Visible() {
		return ""
	}
	lines := []string{
		c.renderHeader(),
		"",
		c.input.View(),
		ruleStyle.Render(strings.Repeat("─", c.rowWidth)),
	}
	lines = append(lines, c.renderRows()...)
	lines = append(lines,
		ruleStyle.Render(strings.Repeat("─", c.rowWidth)),
		c.renderHelp(),
	)
	return widgets.Card(strings.Join(lines, "\n"), core.ColorFocus)
}

func (c *CurrencyPicker) renderHeader() string {
	title := titleStyle.Render(c.title)
	closeHint := mutedStyle.Render("esc ✕")
	gap := c.rowWidth - lipgloss.Width(title) - lipgloss.Width(closeHint)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + closeHint
}

func (c *CurrencyPicker) renderRows() []string {
	filtered := c.picker.Filtered()
	if len(filtered) == 0 {
		return []string{c.renderEmpty()}
	}
	start, end := c.picker.Window()
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cur := filtered[i]
		lines = append(lines, c.renderRow(cur, c.picker.IsSelected(cur), i == c.picker.Cursor()))
	}
	if len(filtered) > end-start {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(filtered))))
	}
	return lines
}

func (c *CurrencyPicker) renderEmpty() string {
	line := mutedStyle.Render("No currencies match")
	if s, ok := core.SuggestCode(c.picker.Currencies(), c.picker.Query()); ok {
		line += mutedStyle.Render(", did you mean ") + hintStyle.Render(s.Code) + mutedStyle.Render("?")
	}
	return line
}

func (c *CurrencyPicker) renderRow(cur core.Currency, selected, isCursor bool) string {
	marker := "  "
	if isCursor {
		marker = "› "
	}
	check := "  "
	if selected {
		check = " " + checkStyle.Render("✓")
	}
	symbol := symbolStyle.Render(ansi.Truncate(cur.Symbol, symbolWidth, ""))
	code := codeStyle.Render(padRight(cur.Code, codeWidth))
	left := marker + symbol + " " + code + " "
	nameWidth := c.rowWidth - lipgloss.Width(left) - lipgloss.Width(check)
	name := nameStyle.Render(padRight(ansi.Truncate(cur.Name, max(0, nameWidth), "…"), max(0, nameWidth)))
	row := left + name + check

	bg, bold := core.RowBackground(selected, isCursor)
	style := lipgloss.NewStyle()
	if bg != "" {
		style = style.Background(bg)
	}
	if bold {
		style = style.Bold(true)
	}
	return style.Render(row)
}

func (c *CurrencyPicker) renderHelp() string {
	parts := make([]string, 0, 4)
	for _, b := range c.keys.OverlayHelp() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
