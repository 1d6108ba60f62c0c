package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/currencypicker/core"
	"github.com/jask/currencypicker/internal/config"
	"github.com/jask/currencypicker/screens"
	"github.com/jask/currencypicker/widgets"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Catalog supplies the currency list. *repository.CurrencyRepo and
// catalog.File satisfy it.
type Catalog interface {
	Currencies(ctx context.Context) ([]core.Currency, error)
}

// App hosts the currency picker. It owns the list and the selected currency;
// the picker reports selections back through onSelect.
type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    Catalog
	log        zerolog.Logger
	keys       hostKeys
	picker     *screens.CurrencyPicker
	currencies []core.Currency
	selected   core.Currency
	loaded     bool
	status     string
	width      int
	height     int
}

type hostKeys struct {
	Quit   key.Binding
	Reload key.Binding
}

func New(ctx context.Context, cfg config.Config, catalog Catalog, log zerolog.Logger) *App {
	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		catalog: catalog,
		log:     log,
		keys: hostKeys{
			Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		},
		selected: core.Currency{Code: cfg.UI.DefaultCurrency},
	}
	a.picker = screens.NewCurrencyPicker(nil, a.selected, a.onSelect,
		screens.WithPageSize(cfg.UI.MaxRows),
		screens.WithKeyMap(core.DefaultKeyMap().WithOpenKey(cfg.UI.OpenKey)),
	)
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadCurrencies()
}

func (a *App) Selected() core.Currency { return a.selected }

func (a *App) Picker() *screens.CurrencyPicker { return a.picker }

func (a *App) loadCurrencies() tea.Cmd {
	return func() tea.Msg {
		list, err := a.catalog.Currencies(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load currencies: %w", err)}
		}
		return currenciesMsg(list)
	}
}

func (a *App) onSelect(c core.Currency) {
	prev := a.selected
	a.selected = c
	a.picker.SetSelected(c)
	a.status = fmt.Sprintf("selected %s (%s)", c.Code, c.Name)
	a.log.Info().Str("from", prev.Code).Str("to", c.Code).Msg("currency selected")
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, a.picker.Update(m)
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.picker.IsOpen() && !key.Matches(m, a.picker.Keys().Open) {
			switch {
			case key.Matches(m, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(m, a.keys.Reload):
				a.status = "reloading..."
				return a, a.loadCurrencies()
			}
		}
		return a, a.picker.Update(m)
	case currenciesMsg:
		a.applyCurrencies([]core.Currency(m))
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Error().Err(m.error).Msg("catalog")
	default:
		return a, a.picker.Update(msg)
	}
	return a, nil
}

// applyCurrencies installs a freshly loaded list. The current selection is
// kept when the list still has its code; otherwise the first entry wins.
func (a *App) applyCurrencies(list []core.Currency) {
	a.currencies = list
	a.loaded = true
	a.picker.SetCurrencies(list)
	a.status = fmt.Sprintf("%d currencies", len(list))
	if len(list) == 0 {
		a.log.Warn().Msg("catalog is empty")
		return
	}
	if idx := core.IndexOfCode(list, a.selected.Code); idx >= 0 {
		a.selected = list[idx]
	} else {
		a.log.Warn().Str("code", a.selected.Code).Str("fallback", list[0].Code).Msg("unknown currency, using first catalog entry")
		a.selected = list[0]
	}
	a.picker.SetSelected(a.selected)
	a.log.Debug().Int("count", len(list)).Str("selected", a.selected.Code).Msg("catalog loaded")
}

type currenciesMsg []core.Currency

type errMsg struct{ error }

var (
	headerStyle = lipgloss.NewStyle().Foreground(core.ColorText).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(core.ColorMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(core.ColorText)
	statusStyle = lipgloss.NewStyle().Foreground(core.ColorSubtle)
	errStyle    = lipgloss.NewStyle().Foreground(core.ColorError)
)

func (a *App) View() string {
	width, height := a.width, a.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	base := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(headerStyle.Render("Currency")),
			widgets.HStack{
				Widgets: []widgets.Widget{
					widgets.Text("\n" + a.picker.ButtonView()),
					widgets.Box{Title: "Active", Content: a.renderDetails()},
				},
				Ratios: []float64{1, 3},
				Gap:    1,
			},
			widgets.Text(""),
			widgets.Text(a.renderStatus()),
		},
		Heights: []int{1, 6, 0, 1},
	}.Render(width, height)
	return a.picker.View(base, width, height)
}

func (a *App) renderDetails() string {
	if !a.loaded {
		return labelStyle.Render("loading catalog...")
	}
	c := a.selected
	lines := []string{
		labelStyle.Render("Code   ") + valueStyle.Render(c.Code),
		labelStyle.Render("Symbol ") + valueStyle.Render(c.Symbol),
		labelStyle.Render("Name   ") + valueStyle.Render(c.Name),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderStatus() string {
	openHelp := a.picker.Keys().Open.Help()
	help := fmt.Sprintf("[%s] %s  [r] reload  [q] quit", openHelp.Key, openHelp.Desc)
	if a.status == "" {
		return statusStyle.Render(help)
	}
	style := statusStyle
	if strings.HasPrefix(a.status, "error:") {
		style = errStyle
	}
	return style.Render(a.status) + "  " + statusStyle.Render(help)
}
