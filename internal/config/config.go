// Package config parses nothing.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/logging"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/sequence"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "nothing.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level nothing.toml configuration.
type Config struct {
	Detector  DetectorConfig   `toml:"detector"`
	TUI       TUIConfig        `toml:"tui"`
	Terminal  TerminalConfig   `toml:"terminal"`
	Log       LogConfig        `toml:"log"`
	Sequences []SequenceConfig `toml:"sequence"`

	// Path is the file the configuration was read from; empty for defaults.
	Path string `toml:"-"`
}

// DetectorConfig controls the key-sequence detector.
type DetectorConfig struct {
	TimeoutMS int `toml:"timeout_ms"`
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	AccentColor   string `toml:"accent_color"`
	IntroMS       int    `toml:"intro_ms"`
	ToastMS       int    `toml:"toast_ms"`
	MaxToasts     int    `toml:"max_toasts"`
	ShowIndicator bool   `toml:"show_indicator"`
}

// TerminalConfig controls the toy terminal.
type TerminalConfig struct {
	User string `toml:"user"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty = discard while the TUI owns the screen
}

// SequenceConfig overrides the keys of one egg.
type SequenceConfig struct {
	Name string   `toml:"name"`
	Keys []string `toml:"keys"`
}

// Timeout returns the detector timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Detector.TimeoutMS) * time.Millisecond
}

// Intro returns how long the intro fade lasts.
func (c *Config) Intro() time.Duration {
	return time.Duration(c.TUI.IntroMS) * time.Millisecond
}

// ToastTTL returns how long a toast stays visible.
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.TUI.ToastMS) * time.Millisecond
}

// Table returns the configured sequence overrides, keys lower-cased, in file order.
func (c *Config) Table() sequence.Table {
	if len(c.Sequences) == 0 {
		return nil
	}
	t := make(sequence.Table, len(c.Sequences))
	for i, s := range c.Sequences {
		keys := make([]string, len(s.Keys))
		for j, k := range s.Keys {
			keys[j] = strings.ToLower(k)
		}
		t[i] = sequence.Sequence{Name: s.Name, Keys: keys}
	}
	return t
}

// Validate checks the configuration for values that would make the page
// misbehave. It returns all found issues joined together. Sequences that
// cannot fire are not errors here; see sequence.Validate.
func (c *Config) Validate() error {
	var errs []error

	if c.Detector.TimeoutMS <= 0 {
		errs = append(errs, fmt.Errorf("detector.timeout_ms must be > 0"))
	}
	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if c.TUI.IntroMS < 0 {
		errs = append(errs, fmt.Errorf("tui.intro_ms must be >= 0 (0 = no intro)"))
	}
	if c.TUI.ToastMS <= 0 {
		errs = append(errs, fmt.Errorf("tui.toast_ms must be > 0"))
	}
	if c.TUI.MaxToasts <= 0 {
		errs = append(errs, fmt.Errorf("tui.max_toasts must be > 0"))
	}
	if _, err := logging.Options(c.Log.Level, false); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(logging.Levels, ", ")))
	}
	for i, s := range c.Sequences {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sequence[%d].name must not be empty", i))
		}
		for _, k := range s.Keys {
			if k == "" {
				errs = append(errs, fmt.Errorf("sequence[%d].keys must not contain empty keys", i))
				break
			}
		}
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the built-in settings.
func Defaults() Config {
	return Config{
		Detector: DetectorConfig{
			TimeoutMS: int(sequence.DefaultTimeout / time.Millisecond),
		},
		TUI: TUIConfig{
			AccentColor:   DefaultAccentColor,
			IntroMS:       1000,
			ToastMS:       3000,
			MaxToasts:     3,
			ShowIndicator: true,
		},
		Terminal: TerminalConfig{
			User: "guest-user",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. If path is empty, it walks up from the
// current working directory looking for nothing.toml and falls back to
// Defaults when none exists. Unknown keys (likely typos) are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for nothing.toml.
// It returns "" without error when there is none.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default nothing.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const template = `# nothing.toml: configuration for the "nothing to see here" page
# Place this file in the directory you run nothing from (or any parent).

[detector]
timeout_ms = 1500  # max gap between keys before a half-typed sequence is dropped

[tui]
accent_color = "#7D56F4"  # hex color for panels and highlights
intro_ms = 1000           # fade-in on start; 0 = none
toast_ms = 3000           # how long a notification stays up
max_toasts = 3
show_indicator = true     # show the keys typed so far

[terminal]
user = "guest-user"  # what whoami prints

[log]
level = "info"  # trace, debug, info, warn, error, off
file = ""       # log file path; empty = no logs while the page is open

# Override the sequence for any egg. Order decides which egg wins when two
# sequences complete on the same key. Eggs not listed keep their defaults:
# sparkles=spa ghost=boo rabbit=hop lightbulb=night terminal=hack about=about exit=exit
#
# [[sequence]]
# name = "ghost"
# keys = ["b", "o", "o"]
`
