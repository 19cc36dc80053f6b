package tui

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []string
	}{
		{"letter", runes("b"), []string{"b"}},
		{"uppercase folds", runes("B"), []string{"b"}},
		{"burst of runes", runes("boo"), []string{"b", "o", "o"}},
		{"space rune", runes(" "), []string{"space"}},
		{"space key", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []string{"space"}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []string{"escape"}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []string{"arrowup"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []string{"enter"}},
		{"alt chord", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}, nil},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("boo"), Paste: true}, nil},
		{"ctrl chord", tea.KeyMsg{Type: tea.KeyCtrlA}, nil},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.msg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyBindings(t *testing.T) {
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit) {
		t.Error("ctrl+c should quit")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Close) {
		t.Error("esc should close")
	}
	if key.Matches(runes("q"), keys.Quit) {
		t.Error("q must stay free for sequences")
	}
}
