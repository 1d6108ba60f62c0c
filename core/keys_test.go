package core

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMapOpenKeys(t *testing.T) {
	k := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRunes, Runes: []rune("c")},
	} {
		if !key.Matches(msg, k.Open) {
			t.Fatalf("%q should open the picker", msg.String())
		}
	}
}

func TestWithOpenKey(t *testing.T) {
	k := DefaultKeyMap().WithOpenKey(" X ")
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, k.Open) {
		t.Fatal("x should open the picker")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, k.Open) {
		t.Fatal("c should no longer open the picker")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Open) {
		t.Fatal("enter should still open the picker")
	}
	if got := DefaultKeyMap().WithOpenKey(""); got.Open.Help().Key != "c" {
		t.Fatalf("blank open key should keep default, got %q", got.Open.Help().Key)
	}
}
