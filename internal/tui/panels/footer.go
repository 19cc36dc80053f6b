package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Scene string // "intro", "idle", "egg", "terminal"
	Found int
	Total int
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: the found counter, once anything is found. Right side: keybinding
// hints for the current scene.
func RenderFooter(props FooterProps, width int) string {
	var left string
	if props.Found > 0 {
		left = fmt.Sprintf("found %d/%d", props.Found, props.Total)
	}
	right := sceneHints(props.Scene)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}

// sceneHints returns the keybinding hints for a given scene.
func sceneHints(scene string) string {
	switch scene {
	case "egg":
		return "esc:close  ctrl+c:quit"
	case "terminal":
		return "enter:run  pgup/pgdn:scroll  esc:close"
	case "intro":
		return ""
	default:
		return "ctrl+c:quit"
	}
}
