package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/sequence"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"detector.timeout_ms", cfg.Detector.TimeoutMS, 1500},
		{"tui.accent_color", cfg.TUI.AccentColor, DefaultAccentColor},
		{"tui.intro_ms", cfg.TUI.IntroMS, 1000},
		{"tui.toast_ms", cfg.TUI.ToastMS, 3000},
		{"tui.max_toasts", cfg.TUI.MaxToasts, 3},
		{"tui.show_indicator", cfg.TUI.ShowIndicator, true},
		{"terminal.user", cfg.Terminal.User, "guest-user"},
		{"log.level", cfg.Log.Level, "info"},
		{"log.file", cfg.Log.File, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v", err)
	}
	if cfg.Timeout() != sequence.DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), sequence.DefaultTimeout)
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[detector]
timeout_ms = 800

[tui]
accent_color = "#FF0000"
intro_ms = 0
toast_ms = 5000
max_toasts = 1
show_indicator = false

[terminal]
user = "neo"

[log]
level = "debug"
file = "/tmp/nothing.log"

[[sequence]]
name = "ghost"
keys = ["G", "h", "o", "s", "t"]

[[sequence]]
name = "rabbit"
keys = ["r", "u", "n"]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"timeout", cfg.Timeout(), 800 * time.Millisecond},
			{"accent", cfg.TUI.AccentColor, "#FF0000"},
			{"intro", cfg.Intro(), time.Duration(0)},
			{"toast", cfg.ToastTTL(), 5 * time.Second},
			{"max_toasts", cfg.TUI.MaxToasts, 1},
			{"show_indicator", cfg.TUI.ShowIndicator, false},
			{"user", cfg.Terminal.User, "neo"},
			{"log.level", cfg.Log.Level, "debug"},
			{"log.file", cfg.Log.File, "/tmp/nothing.log"},
			{"path", cfg.Path, path},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}

		want := sequence.Table{
			{Name: "ghost", Keys: []string{"g", "h", "o", "s", "t"}},
			{Name: "rabbit", Keys: []string{"r", "u", "n"}},
		}
		if got := cfg.Table(); !reflect.DeepEqual(got, want) {
			t.Errorf("Table() = %v, want %v", got, want)
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		path := writeConfig(t, `
[terminal]
user = "trinity"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Detector.TimeoutMS != 1500 {
			t.Errorf("timeout_ms = %d, want default 1500", cfg.Detector.TimeoutMS)
		}
		if cfg.TUI.AccentColor != DefaultAccentColor {
			t.Errorf("accent_color = %q, want default", cfg.TUI.AccentColor)
		}
		if cfg.Table() != nil {
			t.Errorf("Table() = %v, want nil without overrides", cfg.Table())
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, `
[detector]
timeout = 100
`)
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "detector.timeout") {
			t.Errorf("error %q should name the unknown key", err)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := writeConfig(t, `[detector`)
		if _, err := Load(path); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, `
[detector]
timeout_ms = 0
`)
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "detector.timeout_ms") {
			t.Fatalf("Load() error = %v, want timeout_ms validation error", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Fatal("expected error for explicit missing path")
		}
	})
}

func TestLoad_SearchesUpwardAndFallsBack(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(nested)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without a file: %v", err)
	}
	if cfg.Path != "" {
		// A nothing.toml above the temp dir would be found first; skip in that case.
		t.Skipf("found unrelated config at %s", cfg.Path)
	}

	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[terminal]\nuser = \"morpheus\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Terminal.User != "morpheus" {
		t.Errorf("user = %q, want morpheus from parent config", cfg.Terminal.User)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad accent", func(c *Config) { c.TUI.AccentColor = "purple" }, "tui.accent_color"},
		{"empty accent ok", func(c *Config) { c.TUI.AccentColor = "" }, ""},
		{"negative intro", func(c *Config) { c.TUI.IntroMS = -1 }, "tui.intro_ms"},
		{"zero toast", func(c *Config) { c.TUI.ToastMS = 0 }, "tui.toast_ms"},
		{"zero max toasts", func(c *Config) { c.TUI.MaxToasts = 0 }, "tui.max_toasts"},
		{"bad level", func(c *Config) { c.Log.Level = "shouty" }, "log.level"},
		{"warn level ok", func(c *Config) { c.Log.Level = "warn" }, ""},
		{"unnamed sequence", func(c *Config) {
			c.Sequences = []SequenceConfig{{Keys: []string{"x"}}}
		}, "sequence[0].name"},
		{"empty key", func(c *Config) {
			c.Sequences = []SequenceConfig{{Name: "x", Keys: []string{"a", ""}}}
		}, "sequence[0].keys"},
		{"sequence without keys is a warning, not an error", func(c *Config) {
			c.Sequences = []SequenceConfig{{Name: "x"}}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_WarnLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Detector.TimeoutMS = -1
	cfg.TUI.MaxToasts = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"detector.timeout_ms", "tui.max_toasts"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	path, err := InitFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q", path)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if !reflect.DeepEqual(cfg.TUI, Defaults().TUI) {
		t.Errorf("template TUI = %+v, want defaults %+v", cfg.TUI, Defaults().TUI)
	}

	if _, err := InitFile(dir); err == nil {
		t.Error("second InitFile should fail")
	}
}
