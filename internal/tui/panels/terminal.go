package panels

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/shell"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui/components"
)

var (
	terminalRun    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run"))
	terminalClose  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))
	terminalScroll = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll"))
)

// TerminalPanel is the interactive toy terminal. It owns the keyboard while
// open; keys typed here never reach the sequence detector.
type TerminalPanel struct {
	sh      *shell.Shell
	input   textinput.Model
	log     components.LogView
	history shell.History
	open    bool
	last    *shell.Result
	width   int
	height  int
}

// NewTerminalPanel creates a closed terminal with the welcome banner.
func NewTerminalPanel(sh *shell.Shell) TerminalPanel {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Placeholder = "type a command"
	ti.CharLimit = 256

	p := TerminalPanel{
		sh:      sh,
		input:   ti,
		history: shell.NewHistory(),
		log:     components.NewLogView(0, 0),
	}
	p.log = p.log.SetContent(p.history.Lines())
	return p
}

// Open focuses the input. History is kept from earlier sessions.
func (p TerminalPanel) Open() (TerminalPanel, tea.Cmd) {
	p.open = true
	p.input.Reset()
	cmd := p.input.Focus()
	return p, tea.Batch(cmd, textinput.Blink)
}

// Close blurs the input and clears anything half-typed.
func (p TerminalPanel) Close() TerminalPanel {
	p.open = false
	p.input.Reset()
	p.input.Blur()
	return p
}

// IsOpen reports whether the terminal is showing.
func (p TerminalPanel) IsOpen() bool { return p.open }

// LastResult returns the command run by the most recent Update, if any.
func (p TerminalPanel) LastResult() (shell.Result, bool) {
	if p.last == nil {
		return shell.Result{}, false
	}
	return *p.last, true
}

// History returns the transcript lines.
func (p TerminalPanel) History() []string { return p.history.Lines() }

// SetSize sets the outer size of the panel, borders included.
func (p TerminalPanel) SetSize(w, h int) TerminalPanel {
	p.width, p.height = w, h
	// border (2) + title row + input row
	p.log = p.log.SetSize(max(w-4, 1), max(h-4, 1))
	p.input.Width = max(w-4-lipgloss.Width(p.input.Prompt)-1, 1)
	return p
}

// Update handles input while the terminal is open.
func (p TerminalPanel) Update(msg tea.Msg) (TerminalPanel, tea.Cmd) {
	p.last = nil
	if !p.open {
		return p, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, terminalClose):
			return p.Close(), nil
		case key.Matches(km, terminalRun):
			res := p.sh.Run(p.input.Value())
			p.last = &res
			p.history = p.history.Apply(res)
			p.log = p.log.SetContent(p.history.Lines())
			p.input.Reset()
			if res.Exit {
				return p.Close(), nil
			}
			return p, nil
		case key.Matches(km, terminalScroll):
			var cmd tea.Cmd
			p.log, cmd = p.log.Update(msg)
			return p, cmd
		}
	}
	if _, ok := msg.(tea.MouseMsg); ok {
		var cmd tea.Cmd
		p.log, cmd = p.log.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the terminal inside box, with title styled by title.
func (p TerminalPanel) View(box, title lipgloss.Style) string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	inner := max(p.width-box.GetHorizontalFrameSize(), 1)
	outer := max(p.width-box.GetHorizontalBorderSize(), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		title.Render("mini-terminal"),
		lipgloss.PlaceHorizontal(max(inner-lipgloss.Width("mini-terminal"), 0), lipgloss.Right, "esc"),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, header, p.log.View(), p.input.View())
	return box.Width(outer).Render(body)
}
