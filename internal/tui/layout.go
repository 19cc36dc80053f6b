package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed geometry for a given terminal size.
type Layout struct {
	Stage     Rect // landing page, egg panels and toasts
	Indicator Rect // pending keys
	Footer    Rect
	ToastW    int  // width of one toast box
	Terminal  Rect // toy terminal, centered inside Stage
	TooSmall  bool // true when terminal is below the minimum 40×12
}

// Minimum usable terminal size.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Calculate computes the layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 40 or height < 12.
//
// Algorithm:
//   - Footer: full width, 1 row at bottom
//   - Indicator: full width, 1 row above the footer
//   - Stage: everything above the indicator
//   - Toasts: 40% of width, clamped to [24, 44]
//   - Terminal: stage inset by 2 columns, clamped to 80×20, centered
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	stageH := height - 2

	toastW := width * 40 / 100
	if toastW < 24 {
		toastW = 24
	}
	if toastW > 44 {
		toastW = 44
	}

	termW := min(width-4, 80)
	termH := min(stageH-2, 20)

	return Layout{
		Stage:     Rect{X: 0, Y: 0, Width: width, Height: stageH},
		Indicator: Rect{X: 0, Y: stageH, Width: width, Height: 1},
		Footer:    Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		ToastW:    toastW,
		Terminal:  Rect{X: (width - termW) / 2, Y: (stageH - termH) / 2, Width: termW, Height: termH},
	}
}
