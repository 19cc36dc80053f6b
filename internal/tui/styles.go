// Package tui provides the bubbletea + lipgloss host for the hidden key
// sequences: a near-empty page that reveals eggs as the visitor types.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorDim    = lipgloss.Color("#444444")
	colorBlack  = lipgloss.Color("#000000")
	colorNight  = lipgloss.Color("#0B0B12")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
)

// Styles that do not depend on the accent color.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	hackerStyle = lipgloss.NewStyle().
			Background(colorBlack).
			Foreground(colorGreen)

	lightsStyle = lipgloss.NewStyle().
			Background(colorNight).
			Foreground(colorWhite)

	dotOnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dotOffStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	toastTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
