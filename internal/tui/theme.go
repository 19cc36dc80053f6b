package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui/panels"
)

// Theme holds accent-color-derived styles. Non-accent styles are
// package-level in styles.go.
type Theme struct {
	accentStyle lipgloss.Style // pending keys indicator
	cardStyle   lipgloss.Style // floating and about cards
	toastStyle  lipgloss.Style
	termStyle   lipgloss.Style // toy terminal border
	badgeStyle  lipgloss.Style // key hints on the about card
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		cardStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 2),
		toastStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1),
		termStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Foreground(colorGreen),
		badgeStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(colorWhite).
			Padding(0, 1),
	}
}

// IndicatorStyle returns the style for the pending keys line.
func (t Theme) IndicatorStyle() lipgloss.Style { return t.accentStyle }

// ToastStyle returns the border style for one toast.
func (t Theme) ToastStyle() lipgloss.Style { return t.toastStyle }

// TerminalStyle returns the border style for the toy terminal.
func (t Theme) TerminalStyle() lipgloss.Style { return t.termStyle }

// EggStyles returns the styles egg panels are drawn with.
func (t Theme) EggStyles(cardWidth int) panels.EggStyles {
	return panels.EggStyles{
		Card:      t.cardStyle,
		Title:     titleStyle,
		Muted:     mutedStyle,
		Lights:    lightsStyle,
		DotOn:     dotOnStyle,
		DotOff:    dotOffStyle,
		Hacker:    hackerStyle,
		KeyBadge:  t.badgeStyle,
		CardWidth: cardWidth,
	}
}
