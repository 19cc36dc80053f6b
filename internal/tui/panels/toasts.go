package panels

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/notify"
)

// RenderToasts stacks the visible toasts, newest first, right-aligned within
// width. Each toast is a bordered box of boxWidth columns.
func RenderToasts(toasts []notify.Toast, width, boxWidth int, box, title lipgloss.Style) string {
	if len(toasts) == 0 || width <= 0 {
		return ""
	}
	if boxWidth > width {
		boxWidth = width
	}
	// lipgloss widths include padding but not borders
	inner := max(boxWidth-box.GetHorizontalBorderSize(), 1)

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		body := title.Render(t.Title)
		if t.Description != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, t.Description)
		}
		rendered = append(rendered, box.Width(inner).Render(body))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}
