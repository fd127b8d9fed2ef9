package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/llfsmgen/llfsmgen"
	"github.com/llfsmgen/llfsmgen/internal/config"
	"github.com/llfsmgen/llfsmgen/internal/logging"
	"github.com/llfsmgen/llfsmgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llfsmgen",
	Short: "llfsmgen generates VHDL from logic-labelled finite state machines",
	Long: `llfsmgen compiles LLFSM machine and arrangement folders into VHDL entities,
installs the generated sources into other projects and reports on their design.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// settings is filled before any sub-command runs.
var settings struct {
	config config.Config
	logger *slog.Logger
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		tui.NewStatus(os.Stderr).Failure(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write operation metrics to this file in the Prometheus text format")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	required := cmd.Flags().Changed("config")
	if path == "" {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path, required, os.Environ())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	settings.config = cfg
	settings.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// newGenerator builds the library entry point from the loaded settings.
// Metrics are always recorded when serve is true.
func newGenerator(cmd *cobra.Command, serve bool) *llfsmgen.Generator {
	opts := []llfsmgen.Option{
		llfsmgen.WithLogger(settings.logger),
		llfsmgen.WithVivadoSourcesDir(settings.config.Vivado.SourcesDir),
		llfsmgen.WithOutput(cmd.OutOrStdout()),
	}
	if serve || settings.config.MetricsFile != "" {
		opts = append(opts, llfsmgen.WithMetrics())
	}
	return llfsmgen.New(opts...)
}

// run executes one command, writes the metrics file when configured and
// prints the outcome.
func run(cmd *cobra.Command, command llfsmgen.Command, done string) error {
	gen := newGenerator(cmd, false)
	err := gen.Run(cmd.Context(), command)
	if path := settings.config.MetricsFile; path != "" {
		if werr := gen.WriteMetrics(path); werr != nil {
			settings.logger.Warn("Failed to write metrics", "path", path, "error", werr)
		}
	}
	if err != nil {
		return err
	}
	if done != "" {
		tui.NewStatus(cmd.ErrOrStderr()).Success("%s", done)
	}
	return nil
}
