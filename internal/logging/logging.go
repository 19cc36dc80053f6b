// Package logging builds the pslog loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
)

// Levels lists the canonical log level names, as pslog parses them.
var Levels = parseable("trace", "debug", "info", "warn", "error", "off")

func parseable(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := pslog.ParseLevel(n); ok {
			out = append(out, n)
		}
	}
	return out
}

// Options returns pslog options for the named level. An empty level means
// info. console selects the human-readable console format; otherwise output
// is one JSON object per line.
func Options(level string, console bool) (pslog.Options, error) {
	opts := pslog.Options{Mode: pslog.ModeStructured, NoColor: true, VerboseFields: true}
	if console {
		opts = pslog.Options{Mode: pslog.ModeConsole}
	}
	if strings.TrimSpace(level) == "" {
		opts.MinLevel = pslog.InfoLevel
		return opts, nil
	}
	lvl, ok := pslog.ParseLevel(level)
	if !ok {
		return opts, fmt.Errorf("logging: unknown level %q (want one of %s)", level, strings.Join(Levels, ", "))
	}
	opts.MinLevel = lvl
	return opts, nil
}

// New creates a structured logger writing to w.
func New(w io.Writer, level string) (pslog.Logger, error) {
	opts, err := Options(level, false)
	if err != nil {
		return nil, err
	}
	return pslog.NewWithOptions(w, opts), nil
}

// Console creates a console-format logger writing to w.
func Console(w io.Writer, level string) (pslog.Logger, error) {
	opts, err := Options(level, true)
	if err != nil {
		return nil, err
	}
	return pslog.NewWithOptions(w, opts), nil
}

// OpenFile creates a structured logger appending to path. An empty path
// discards all output. The returned close function is never nil.
func OpenFile(path, level string) (pslog.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, func() error { return nil }, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("logging: mkdir %q: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %q: %w", path, err)
	}
	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
