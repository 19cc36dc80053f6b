// Package panels renders the regions of the page: the landing stage, egg
// panels, the toy terminal, toasts and the footer.
package panels

import (
	"github.com/charmbracelet/lipgloss"
)

// StageProps holds what the near-empty landing page shows.
type StageProps struct {
	Title    string
	Subtitle string
	Hidden   bool // intro: the page has not faded in yet
}

// RenderStage renders the landing text centered in a width x height box.
func RenderStage(props StageProps, width, height int, title, subtitle lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if props.Hidden {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		title.Render(props.Title),
		"",
		subtitle.Render(props.Subtitle),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// RenderIndicator renders the pending keys as one centered line, or a blank
// line when nothing is pending.
func RenderIndicator(pending string, width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if pending == "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, "")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(pending))
}
