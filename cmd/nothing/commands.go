package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/config"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/logging"
	"github.com/LISSConsulting/LISSTech.NothingToSee/internal/shell"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nothing",
		Short:         "Nothing to see here. Or is there?",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			noAlt, _ := cmd.Flags().GetBool("no-alt-screen")
			return runPage(cmd.Context(), cfg, !noAlt)
		},
	}
	root.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	root.PersistentFlags().Duration("timeout", 0, "max gap between keys of a sequence (0 = use config)")
	root.Flags().Bool("no-alt-screen", false, "draw inline instead of taking over the terminal")

	root.AddCommand(
		initCmd(),
		eggsCmd(),
		shellCmd(),
	)

	return root
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create " + config.FileName + " in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func eggsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eggs",
		Short: "List the hidden sequences and any problems with them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, table, warnings := buildCatalog(cfg)
			fmt.Fprint(cmd.OutOrStdout(), formatEggList(catalog, table, warnings))
			return nil
		},
	}
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the mini-terminal in line mode on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return shell.New(cfg.Terminal.User).Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// loadConfig reads the configuration named by --config and applies the
// --timeout override. The command's context logger is replaced by a console
// logger on stderr filtered at log.level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Detector.TimeoutMS = int(timeout / time.Millisecond)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--timeout: %w", err)
		}
	}
	logger, err := logging.Console(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(pslog.ContextWithLogger(ctx, logger))
	pslog.Ctx(cmd.Context()).Debug("config loaded", "path", cfg.Path, "timeout", cfg.Timeout())
	return cfg, nil
}
