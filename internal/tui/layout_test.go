package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tooSmall bool
		stageH   int
		toastW   int
		termW    int
		termH    int
	}{
		{
			name:  "40x12 minimum viable",
			width: 40, height: 12,
			stageH: 10,
			toastW: 24, // 40*40/100=16 → clamped to min 24
			termW:  36, // 40-4
			termH:  8,  // 10-2
		},
		{
			name:  "80x24",
			width: 80, height: 24,
			stageH: 22,
			toastW: 32, // 80*40/100=32 (in range)
			termW:  76,
			termH:  20, // 22-2=20
		},
		{
			name:  "200x60",
			width: 200, height: 60,
			stageH: 58,
			toastW: 44, // 200*40/100=80 → clamped to max 44
			termW:  80, // clamped
			termH:  20, // clamped
		},
		{
			name:  "39x12 too small (width)",
			width: 39, height: 12,
			tooSmall: true,
		},
		{
			name:  "40x11 too small (height)",
			width: 40, height: 11,
			tooSmall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}
			if l.Stage.Height != tt.stageH {
				t.Errorf("Stage.Height = %d, want %d", l.Stage.Height, tt.stageH)
			}
			if l.ToastW != tt.toastW {
				t.Errorf("ToastW = %d, want %d", l.ToastW, tt.toastW)
			}
			if l.Terminal.Width != tt.termW || l.Terminal.Height != tt.termH {
				t.Errorf("Terminal = %dx%d, want %dx%d", l.Terminal.Width, l.Terminal.Height, tt.termW, tt.termH)
			}
			if got := l.Stage.Height + l.Indicator.Height + l.Footer.Height; got != tt.height {
				t.Errorf("rows add up to %d, want %d", got, tt.height)
			}
			if l.Indicator.Y != l.Stage.Height || l.Footer.Y != tt.height-1 {
				t.Errorf("indicator at %d, footer at %d", l.Indicator.Y, l.Footer.Y)
			}
			if l.Terminal.X+l.Terminal.Width > tt.width || l.Terminal.Y+l.Terminal.Height > l.Stage.Height {
				t.Errorf("terminal %+v does not fit the stage", l.Terminal)
			}
		})
	}
}
