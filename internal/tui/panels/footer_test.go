package panels

import (
	"strings"
	"testing"
)

func TestRenderFooter_SceneHints(t *testing.T) {
	tests := []struct {
		scene string
		want  string
	}{
		{"idle", "ctrl+c:quit"},
		{"egg", "esc:close"},
		{"terminal", "enter:run"},
		{"terminal", "pgup/pgdn:scroll"},
	}
	for _, tt := range tests {
		t.Run(tt.scene+"/"+tt.want, func(t *testing.T) {
			rendered := RenderFooter(FooterProps{Scene: tt.scene, Total: 7}, 120)
			if !strings.Contains(rendered, tt.want) {
				t.Errorf("footer for %s missing %q; got %q", tt.scene, tt.want, rendered)
			}
		})
	}
}

func TestRenderFooter_FoundCounter(t *testing.T) {
	rendered := RenderFooter(FooterProps{Scene: "idle", Total: 7}, 120)
	if strings.Contains(rendered, "found") {
		t.Errorf("counter should stay hidden until something is found; got %q", rendered)
	}

	rendered = RenderFooter(FooterProps{Scene: "idle", Found: 3, Total: 7}, 120)
	if !strings.Contains(rendered, "found 3/7") {
		t.Errorf("footer missing counter; got %q", rendered)
	}
}

func TestRenderFooter_NarrowWidth(t *testing.T) {
	props := FooterProps{Scene: "terminal", Found: 7, Total: 7}
	// Should not panic even at very narrow widths
	_ = RenderFooter(props, 10)
}
