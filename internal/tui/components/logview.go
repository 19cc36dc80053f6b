package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// LogView is a scrollable transcript that wraps bubbles/viewport.
// Any content change scrolls to the bottom; pgup/pgdown and the mouse wheel
// scroll back through older lines.
type LogView struct {
	vp     viewport.Model
	lines  []string // rendered (pre-styled) lines
	width  int
	height int
}

// NewLogView creates an empty LogView with the given dimensions.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
}

// SetContent replaces all lines with the given slice and scrolls to the bottom.
func (v LogView) SetContent(lines []string) LogView {
	v.lines = make([]string, len(lines))
	copy(v.lines, lines)
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	v.vp.GotoBottom()
	return v
}

// SetSize resizes the log view to the given dimensions.
func (v LogView) SetSize(w, h int) LogView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	v.vp.GotoBottom()
	return v
}

// Update handles scroll keys and mouse events.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// View renders the visible part of the transcript.
func (v LogView) View() string {
	return v.vp.View()
}
