package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the keys the root model handles before anything else.
type keyMap struct {
	Quit  key.Binding
	Close key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// namedKeys maps bubbletea key names to the identifiers sequences use.
var namedKeys = map[string]string{
	"esc":       "escape",
	" ":         "space",
	"up":        "arrowup",
	"down":      "arrowdown",
	"left":      "arrowleft",
	"right":     "arrowright",
	"enter":     "enter",
	"tab":       "tab",
	"backspace": "backspace",
	"delete":    "delete",
	"home":      "home",
	"end":       "end",
	"pgup":      "pageup",
	"pgdown":    "pagedown",
}

// NormalizeKey turns a key press into detector identifiers: one lowercased
// identifier per typed rune, or the named key's identifier. Pastes and
// chords with ctrl or alt yield nothing.
func NormalizeKey(msg tea.KeyMsg) []string {
	if msg.Paste || msg.Alt {
		return nil
	}
	if msg.Type == tea.KeyRunes {
		out := make([]string, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				out = append(out, "space")
				continue
			}
			out = append(out, strings.ToLower(string(r)))
		}
		return out
	}
	if id, ok := namedKeys[msg.String()]; ok {
		return []string{id}
	}
	return nil
}
