package main

import (
	"io"
	"log/slog"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/internal/logging"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/spf13/cobra"
)

// app carries the collaborators shared by every subcommand.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *observability.Recorder
	solver   *drills.Solver
	printer  *presentation.Printer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "drills",
		Short:         "Drills runs small numeric and geometric exercises",
		Long:          `Drills evaluates a set of classic exercises (divisible sequences, triangular lists, even Fibonacci sums, sorted intersections, digit puzzles and polygon splitting) and prints the answers as text, JSON, YAML or Markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML/JSON config file (default ./"+config.DefaultFile+")")
	flags.StringP("output", "o", "", "Output format: text, json, yaml or markdown")
	flags.String("log-level", "", "Log level: off, debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.Bool("metrics", false, "Print Prometheus metrics to stderr after the command")
	flags.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newDivisibleCmd(a),
		newTriangleCmd(a),
		newFibCmd(a),
		newIntersectCmd(a),
		newNoOddCmd(a),
		newRepDigitCmd(a),
		newSplitCmd(a),
		newVersionCmd(),
	)
	return rootCmd, a
}

// flushMetrics writes the collected metrics when --metrics is enabled.
// It runs after Execute returns so rejected inputs are reported too.
func (a *app) flushMetrics(w io.Writer) error {
	if !a.cfg.Metrics || a.recorder == nil {
		return nil
	}
	return a.recorder.Write(w)
}

// setup resolves configuration (file, then environment, then flags) and
// builds the solver and printer.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, enabled, _ := logging.ParseLevel(cfg.LogLevel)
	if enabled {
		a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level, cfg.LogFormat)
	} else {
		a.logger = logging.NewNop()
	}

	a.recorder = observability.NewRecorder()
	a.solver = drills.New(drills.WithLogger(a.logger), drills.WithRecorder(a.recorder))

	a.printer, err = presentation.NewPrinter(cmd.OutOrStdout(), cfg.Output, presentation.WithColor(cfg.Color))
	if err != nil {
		return err
	}

	a.logger.Debug("configuration resolved", "output", cfg.Output, "metrics", cfg.Metrics)
	return nil
}
