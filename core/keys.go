package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the picker's bindings. Open applies to the closed selector;
// the rest apply while the overlay is visible. Printable keys that match no
// overlay binding go to the search field.
type KeyMap struct {
	Open     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Dismiss  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "c"),
			key.WithHelp("c", "currency"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// WithOpenKey swaps the letter that opens the picker. enter and space always
// open it.
func (k KeyMap) WithOpenKey(openKey string) KeyMap {
	openKey = normalizeKey(openKey)
	if openKey == "" || openKey == "enter" || openKey == " " {
		return k
	}
	k.Open = key.NewBinding(
		key.WithKeys("enter", " ", openKey),
		key.WithHelp(openKey, "currency"),
	)
	return k
}

// OverlayHelp lists the bindings shown in the overlay footer.
func (k KeyMap) OverlayHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Dismiss}
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}
