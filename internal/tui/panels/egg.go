package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/eggs"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui/components"
)

// Lights panel geometry and pulse timing, in animation frames.
const (
	lightsGrid   = 3
	PulsePeriod  = 20 // frames per full pulse
	pulseStagger = 1  // frames between neighbouring dots
)

// EggStyles are the styles an egg panel is drawn with.
type EggStyles struct {
	Card      lipgloss.Style // floating and about cards
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Lights    lipgloss.Style // lights out panel
	DotOn     lipgloss.Style
	DotOff    lipgloss.Style
	Hacker    lipgloss.Style // fake terminal panel
	KeyBadge  lipgloss.Style // hidden key hints on the about card
	CardWidth int
}

// EggView is the panel for the active egg and its animation state.
type EggView struct {
	egg   eggs.Egg
	x, y  float64 // floating card placement, 0..1 of the free space
	frame int     // lights pulse frame
	typed int     // hacker runes revealed so far
	text  []rune
	trail components.Trail
	keys  eggs.Catalog // about card listing
}

// NewEggView creates the panel for egg. x and y place a floating card.
func NewEggView(egg eggs.Egg, x, y float64) EggView {
	return EggView{egg: egg, x: clamp01(x), y: clamp01(y), text: []rune(egg.Body)}
}

// Egg returns the egg being shown.
func (v EggView) Egg() eggs.Egg { return v.egg }

// Position returns the floating card placement.
func (v EggView) Position() (x, y float64) { return v.x, v.y }

// WithAbout returns a view that lists the catalog's hidden keys and the
// visitor's found trail. Only the about card uses it.
func (v EggView) WithAbout(listed eggs.Catalog, trail components.Trail) EggView {
	v.keys = listed
	v.trail = trail
	return v
}

// Pulse advances the lights animation one frame.
func (v EggView) Pulse() EggView {
	v.frame = (v.frame + 1) % PulsePeriod
	return v
}

// Frame returns the current lights animation frame.
func (v EggView) Frame() int { return v.frame }

// TypeNext reveals one more rune of the hacker text.
func (v EggView) TypeNext() EggView {
	if v.typed < len(v.text) {
		v.typed++
	}
	return v
}

// Typed returns the part of the hacker text revealed so far.
func (v EggView) Typed() string { return string(v.text[:v.typed]) }

// TypingDone reports whether the whole hacker text is revealed.
func (v EggView) TypingDone() bool { return v.typed >= len(v.text) }

// View renders the panel into a width x height area.
func (v EggView) View(width, height int, s EggStyles) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	switch v.egg.Kind {
	case eggs.KindLights:
		return v.lightsView(width, height, s)
	case eggs.KindHacker:
		return v.hackerView(width, height, s)
	case eggs.KindAbout:
		return v.aboutView(width, height, s)
	default:
		return v.floatingView(width, height, s)
	}
}

func (v EggView) floatingView(width, height int, s EggStyles) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		v.egg.Icon,
		s.Title.Render(v.egg.Title),
		s.Muted.Render(v.egg.Body),
	)
	card := s.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Position(v.x), lipgloss.Position(v.y), card)
}

func (v EggView) lightsView(width, height int, s EggStyles) string {
	rows := make([]string, 0, lightsGrid)
	for r := 0; r < lightsGrid; r++ {
		dots := make([]string, 0, lightsGrid)
		for c := 0; c < lightsGrid; c++ {
			i := r*lightsGrid + c
			if dotLit(v.frame, i) {
				dots = append(dots, s.DotOn.Render("●"))
			} else {
				dots = append(dots, s.DotOff.Render("○"))
			}
		}
		rows = append(rows, strings.Join(dots, "  "))
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		v.egg.Icon,
		s.Title.Render(v.egg.Title),
		s.Muted.Width(min(width-4, 48)).Align(lipgloss.Center).Render(v.egg.Body),
		"",
		lipgloss.JoinVertical(lipgloss.Center, rows...),
		"",
		s.Muted.Render("press esc to return"),
	)
	return s.Lights.Width(width).Height(height).Render(
		lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block),
	)
}

// dotLit reports whether dot i is in the bright half of its pulse. Each dot
// runs pulseStagger frames behind the previous one.
func dotLit(frame, i int) bool {
	phase := ((frame-i*pulseStagger)%PulsePeriod + PulsePeriod) % PulsePeriod
	return phase >= PulsePeriod/4 && phase < PulsePeriod*3/4
}

func (v EggView) hackerView(width, height int, s EggStyles) string {
	text := v.Typed()
	if !v.TypingDone() {
		text += "█"
	}
	inner := s.Hacker.Width(width).Height(height).Padding(1, 2)
	return inner.Render(text)
}

func (v EggView) aboutView(width, height int, s EggStyles) string {
	cw := s.CardWidth
	if cw <= 0 || cw > width {
		cw = width
	}
	textWidth := max(cw-s.Card.GetHorizontalFrameSize(), 10)

	lines := []string{
		s.Title.Render(v.egg.Title),
		s.Muted.Render("Hidden details about the site creator"),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(v.egg.Body),
		"",
		s.Title.Render("Hidden keys"),
	}
	for _, e := range v.keys {
		lines = append(lines, fmt.Sprintf("%s %s", s.KeyBadge.Render(e.Hint()), e.Blurb))
	}
	if trail := v.trail.SetWidth(textWidth).View(); trail != "" {
		lines = append(lines, "", trail)
	}
	lines = append(lines, "", s.Muted.Render("Press esc to close this dialog and keep exploring."))

	// lipgloss widths include padding but not borders
	card := s.Card.Width(textWidth + s.Card.GetHorizontalPadding()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
