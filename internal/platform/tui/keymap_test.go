package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-trouble/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpListsEveryKey(t *testing.T) {
	display := map[string]string{"left": "←", "right": "→", " ": "space"}

	for _, col := range DefaultKeyMap().FullHelp() {
		for _, b := range col {
			shown := strings.Split(b.Help().Key, "/")
			for _, k := range b.Keys() {
				name, ok := display[k]
				if !ok {
					name = k
				}
				if !slices.Contains(shown, name) {
					t.Errorf("help %q for %q does not list key %q", b.Help().Key, b.Help().Desc, name)
				}
			}
		}
	}
}

func TestDefaultKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if got := len(keys.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", got)
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, want 5", total)
	}
	if keys.Fire.Help().Key == "" {
		t.Error("fire binding should have help text")
	}
}
