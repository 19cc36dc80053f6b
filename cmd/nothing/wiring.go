package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/config"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/eggs"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/logging"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/sequence"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/tui"
)

// buildCatalog applies the configured sequence overrides to the built-in
// eggs and checks the resulting table.
func buildCatalog(cfg *config.Config) (eggs.Catalog, sequence.Table, []string) {
	catalog, table := eggs.Default().WithSequences(cfg.Table())
	handlers := make(sequence.Handlers, len(catalog))
	for _, name := range catalog.Names() {
		handlers[name] = func() {}
	}
	return catalog, table, sequence.Validate(table, handlers)
}

// runPage shows the page until the visitor quits or ctx is cancelled.
// While the page owns the terminal, logs go to the configured log file.
func runPage(ctx context.Context, cfg *config.Config, altScreen bool) error {
	catalog, table, warnings := buildCatalog(cfg)
	for _, w := range warnings {
		pslog.Ctx(ctx).Warn("sequence table", "warning", w)
	}

	logger, closeLog, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("pid", os.Getpid())

	model := tui.New(tui.Options{
		Catalog:       catalog,
		Table:         table,
		Timeout:       cfg.Timeout(),
		AccentColor:   cfg.TUI.AccentColor,
		Intro:         cfg.Intro(),
		ToastTTL:      cfg.ToastTTL(),
		MaxToasts:     cfg.TUI.MaxToasts,
		ShowIndicator: cfg.TUI.ShowIndicator,
		User:          cfg.Terminal.User,
		Logger:        logger,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logger.Info("page opened", "config", cfg.Path, "sequences", len(table))
	return finishTUI(logger, tea.NewProgram(model, opts...))
}

// finishTUI runs the bubbletea program and logs what the visitor found.
// Cancellation (signal, parent context) is a normal shutdown.
func finishTUI(logger pslog.Logger, program *tea.Program) error {
	finalModel, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(tui.Model); ok {
		found, total := m.Found()
		logger.Info("page closed", "found", found, "total", total)
	}
	return nil
}

// formatEggList renders the sequence table in match order. Sequences without
// an egg are marked, and warnings follow the table.
func formatEggList(catalog eggs.Catalog, table sequence.Table, warnings []string) string {
	var b strings.Builder
	b.WriteString("Sequences (first match wins)\n")
	b.WriteString("────────────────────────────\n")
	for i, s := range table {
		e, ok := catalog.Lookup(s.Name)
		what := "(no egg)"
		if ok {
			what = e.ToastTitle
		}
		fmt.Fprintf(&b, "  %2d. %-10s %-12s %s\n", i+1, s.Name, formatKeys(s.Keys), what)
	}
	if len(warnings) > 0 {
		b.WriteString("\nWarnings\n")
		b.WriteString("────────\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "  ! %s\n", w)
		}
	}
	return b.String()
}

// formatKeys shows single-character keys run together and named keys
// separated by spaces.
func formatKeys(keys []string) string {
	if len(keys) == 0 {
		return "(none)"
	}
	for _, k := range keys {
		if len([]rune(k)) != 1 {
			return strings.Join(keys, " ")
		}
	}
	return strings.Join(keys, "")
}
