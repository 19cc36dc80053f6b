// Package components provides reusable TUI components for the page.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// trailFoundStyle renders found items with bold accent-colored text.
var trailFoundStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

// trailHiddenStyle renders items not found yet in a dimmed style.
var trailHiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// Trail is a stateless row of labels where found items are highlighted and
// the rest are masked.
type Trail struct {
	labels []string
	found  map[int]bool
	reveal bool
	width  int
}

// NewTrail creates a Trail with the given labels, none found.
func NewTrail(labels []string) Trail {
	return Trail{labels: labels, found: map[int]bool{}}
}

// Mark returns a Trail with the i-th label marked found.
func (t Trail) Mark(i int) Trail {
	if i < 0 || i >= len(t.labels) {
		return t
	}
	found := make(map[int]bool, len(t.found)+1)
	for k, v := range t.found {
		found[k] = v
	}
	found[i] = true
	t.found = found
	return t
}

// Reveal returns a Trail that shows labels even when they are not found.
func (t Trail) Reveal(on bool) Trail {
	t.reveal = on
	return t
}

// SetWidth returns a Trail configured for the given render width.
func (t Trail) SetWidth(w int) Trail {
	t.width = w
	return t
}

// Count returns how many labels are found.
func (t Trail) Count() int {
	return len(t.found)
}

// View renders the trail as a single line. Found labels get a check mark;
// hidden ones are masked with dots unless revealed. Items are separated by
// " · " and the line is truncated to width when a width is set.
func (t Trail) View() string {
	if len(t.labels) == 0 {
		return ""
	}

	parts := make([]string, 0, len(t.labels))
	for i, label := range t.labels {
		switch {
		case t.found[i]:
			parts = append(parts, trailFoundStyle.Render("✓ "+label))
		case t.reveal:
			parts = append(parts, trailHiddenStyle.Render("· "+label))
		default:
			parts = append(parts, trailHiddenStyle.Render("· "+strings.Repeat("•", len([]rune(label)))))
		}
	}

	line := strings.Join(parts, "  ")
	if t.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(t.width).Render(line)
	}
	return line
}
