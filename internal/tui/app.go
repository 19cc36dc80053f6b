package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/eggs"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/notify"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/sequence"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/shell"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui/panels"
)

const (
	stageTitle    = "nothing to see here"
	stageSubtitle = "or is there?"
)

// Options configures the host. Zero values fall back to defaults, except
// Intro (zero skips the intro) and ShowIndicator.
type Options struct {
	Catalog       eggs.Catalog   // nil uses eggs.Default()
	Table         sequence.Table // nil uses Catalog.Table()
	Timeout       time.Duration
	AccentColor   string
	Intro         time.Duration
	ToastTTL      time.Duration
	MaxToasts     int
	ShowIndicator bool
	User          string // whoami in the toy terminal
	Logger        pslog.Logger
	Now           func() time.Time
	Rand          *rand.Rand
}

// Model is the root bubbletea model: a near-empty page that feeds every key
// press to the sequence detector and reveals eggs when a sequence completes.
type Model struct {
	detector *sequence.Detector
	catalog  eggs.Catalog
	trail    eggs.Trail
	toasts   notify.Queue

	// Scene and its panels
	scene    Scene
	egg      panels.EggView
	eggGen   int // bumped whenever the egg view changes; stale ticks are dropped
	terminal panels.TerminalPanel

	// Layout
	layout        Layout
	theme         Theme
	width         int
	height        int
	showIndicator bool
	intro         time.Duration

	log pslog.Logger
	now func() time.Time
	rng *rand.Rand
}

// New creates the host Model.
func New(opts Options) Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = eggs.Default()
	}
	table := opts.Table
	if table == nil {
		table = catalog.Table()
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured})
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}

	scene := SceneIntro
	if opts.Intro <= 0 {
		scene = SceneIdle
	}

	layout := Calculate(80, 24)
	return Model{
		detector:      sequence.New(table, sequence.WithTimeout(opts.Timeout)),
		catalog:       catalog,
		trail:         eggs.NewTrail(catalog),
		toasts:        notify.NewQueue(opts.ToastTTL, opts.MaxToasts),
		scene:         scene,
		terminal:      panels.NewTerminalPanel(shell.New(opts.User)).SetSize(layout.Terminal.Width, layout.Terminal.Height),
		layout:        layout,
		theme:         NewTheme(opts.AccentColor),
		width:         80,
		height:        24,
		showIndicator: opts.ShowIndicator,
		intro:         opts.Intro,
		log:           logger,
		now:           now,
		rng:           rng,
	}
}

// Found returns how many eggs were found this session and how many exist.
func (m Model) Found() (found, total int) { return m.trail.Count() }

// Init schedules the end of the intro.
func (m Model) Init() tea.Cmd {
	if m.scene != SceneIntro {
		return nil
	}
	return tea.Tick(m.intro, func(time.Time) tea.Msg { return introDoneMsg{} })
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case introDoneMsg:
		if m.scene == SceneIntro {
			m.scene = SceneIdle
		}
		return m, nil
	case toastExpiredMsg:
		m.toasts = m.toasts.Dismiss(msg.id).Expire(m.now())
		return m, nil
	case pulseMsg:
		if msg.gen != m.eggGen || m.scene != SceneEgg {
			return m, nil
		}
		m.egg = m.egg.Pulse()
		return m, pulseCmd(m.eggGen)
	case typeMsg:
		if msg.gen != m.eggGen || m.scene != SceneEgg {
			return m, nil
		}
		m.egg = m.egg.TypeNext()
		if m.egg.TypingDone() {
			return m, nil
		}
		return m, typeCmd(m.eggGen, m.typeDelay())
	}
	if m.scene == SceneTerminal {
		return m.updateTerminal(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if !m.layout.TooSmall {
		m.terminal = m.terminal.SetSize(m.layout.Terminal.Width, m.layout.Terminal.Height)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if m.scene == SceneTerminal {
		return m.updateTerminal(msg)
	}
	if m.scene == SceneEgg && key.Matches(msg, keys.Close) {
		return m.closeEgg(), nil
	}
	return m.feed(msg)
}

// feed passes each key of msg to the detector and activates the egg of any
// sequence that completes. Runes that follow a sequence opening the terminal
// go to its input instead.
func (m Model) feed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, k := range NormalizeKey(msg) {
		m.detector.OnKey(k, m.now())

		var fired string
		handlers := make(sequence.Handlers, len(m.catalog))
		for _, e := range m.catalog {
			name := e.Name
			handlers[name] = func() { fired = name }
		}
		if _, ok := m.detector.CheckMatches(handlers); !ok {
			continue
		}

		var cmd tea.Cmd
		m, cmd = m.activate(fired)
		cmds = append(cmds, cmd)
		if m.scene == SceneTerminal {
			if msg.Type == tea.KeyRunes && i+1 < len(msg.Runes) {
				rest := tea.KeyMsg{Type: tea.KeyRunes, Runes: msg.Runes[i+1:]}
				m.terminal, cmd = m.terminal.Update(rest)
				cmds = append(cmds, cmd)
			}
			break
		}
	}
	return m, tea.Batch(cmds...)
}

// activate reveals the named egg: marks it found, raises its toast and
// switches to its panel.
func (m Model) activate(name string) (Model, tea.Cmd) {
	e, ok := m.catalog.Lookup(name)
	if !ok {
		return m, nil
	}
	m.trail = m.trail.Mark(name)
	found, total := m.trail.Count()
	m.log.Info("egg found", "egg", name, "keys", e.Hint(), "found", found, "total", total)

	var id int
	m.toasts, id = m.toasts.Push(e.ToastTitle, e.ToastBody, m.now())
	cmds := []tea.Cmd{toastCmd(id, m.toasts.TTL())}

	if e.Kind == eggs.KindShell {
		if !m.scene.CanTransitionTo(SceneTerminal) {
			return m, tea.Batch(cmds...)
		}
		m.eggGen++
		m.egg = panels.EggView{}
		m.scene = SceneTerminal
		var cmd tea.Cmd
		m.terminal, cmd = m.terminal.Open()
		return m, tea.Batch(append(cmds, cmd)...)
	}

	if !m.scene.CanTransitionTo(SceneEgg) {
		return m, tea.Batch(cmds...)
	}
	m.eggGen++
	m.egg = panels.NewEggView(e, 0.1+0.8*m.rng.Float64(), 0.1+0.8*m.rng.Float64())
	if e.Kind == eggs.KindAbout {
		m.egg = m.egg.WithAbout(m.catalog.Listed(), m.trailView())
	}
	m.scene = SceneEgg

	switch e.Kind {
	case eggs.KindLights:
		cmds = append(cmds, pulseCmd(m.eggGen))
	case eggs.KindHacker:
		cmds = append(cmds, typeCmd(m.eggGen, m.typeDelay()))
	}
	return m, tea.Batch(cmds...)
}

// closeEgg hides the active egg and starts a fresh sequence.
func (m Model) closeEgg() Model {
	m.log.Debug("egg closed", "egg", m.egg.Egg().Name)
	m.eggGen++
	m.egg = panels.EggView{}
	m.scene = SceneIdle
	m.detector.Reset()
	return m
}

func (m Model) updateTerminal(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.terminal, cmd = m.terminal.Update(msg)
	if res, ok := m.terminal.LastResult(); ok {
		m.log.Debug("terminal command", "command", res.Command)
	}
	if !m.terminal.IsOpen() {
		m.log.Debug("terminal closed")
		m.scene = SceneIdle
		m.detector.Reset()
	}
	return m, cmd
}

// trailView renders the found trail with the catalog's names as labels.
func (m Model) trailView() components.Trail {
	names := m.trail.Names()
	t := components.NewTrail(names)
	for i, n := range names {
		if m.trail.Found(n) {
			t = t.Mark(i)
		}
	}
	return t
}

func (m Model) typeDelay() time.Duration {
	return typeMinDelay + time.Duration(m.rng.Int64N(int64(typeMaxDelay-typeMinDelay)+1))
}

func toastCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func pulseCmd(gen int) tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{gen: gen} })
}

func typeCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeMsg{gen: gen} })
}

// View renders the page: toasts on top, the stage, the pending keys and
// the footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, MinWidth, MinHeight)
		return warnStyle.
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	w := m.layout.Stage.Width
	toasts := panels.RenderToasts(m.toasts.Visible(), w, m.layout.ToastW, m.theme.ToastStyle(), toastTitleStyle)
	stageH := m.layout.Stage.Height
	if toasts != "" {
		stageH = max(stageH-lipgloss.Height(toasts), 1)
	}

	var stage string
	switch m.scene {
	case SceneEgg:
		stage = m.egg.View(w, stageH, m.theme.EggStyles(min(w-4, 72)))
	case SceneTerminal:
		term := m.terminal.SetSize(m.layout.Terminal.Width, min(m.layout.Terminal.Height, stageH)).
			View(m.theme.TerminalStyle(), titleStyle)
		stage = lipgloss.Place(w, stageH, lipgloss.Center, lipgloss.Center, term)
	default:
		stage = panels.RenderStage(panels.StageProps{
			Title:    stageTitle,
			Subtitle: stageSubtitle,
			Hidden:   m.scene == SceneIntro,
		}, w, stageH, titleStyle, subtitleStyle)
	}

	var pending string
	if m.showIndicator && m.scene.FeedsDetector() {
		pending = m.detector.Pending()
	}
	indicator := panels.RenderIndicator(pending, m.layout.Indicator.Width, m.theme.IndicatorStyle())

	found, total := m.trail.Count()
	footer := panels.RenderFooter(panels.FooterProps{
		Scene: m.scene.String(),
		Found: found,
		Total: total,
	}, m.layout.Footer.Width)

	rows := []string{stage, indicator, footer}
	if toasts != "" {
		rows = append([]string{toasts}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
