// Package main is the entry point for machealth, a single-shot macOS health
// collector. It loads configuration, runs every collector once, and writes
// one report to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Guliveer/machealth/internal/aggregate"
	"github.com/Guliveer/machealth/internal/collector"
	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/config"
	"github.com/Guliveer/machealth/internal/models"
	"github.com/Guliveer/machealth/internal/platform"
	"github.com/Guliveer/machealth/internal/render"
)

// version is set at build time via -ldflags.
var version = "dev"

// timestampLayout is local time with microseconds and no zone.
const timestampLayout = "2006-01-02T15:04:05.000000"

type options struct {
	deep        bool
	pretty      bool
	table       bool
	yaml        bool
	top         int
	configPath  string
	logLevel    string
	printConfig bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "machealth",
		Short: "Collect a one-shot health report for this Mac",
		Long: `machealth samples CPU, memory, SSD temperature, storage, Docker and
the busiest processes once, then prints a single report with warnings
and an overall healthy / warn / critical verdict.

Output is compact JSON unless --pretty, --yaml or --table is given.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, opts, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("machealth {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addFlags(cmd.Flags(), opts)

	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.SortFlags = false
	flags.BoolVar(&opts.deep, "deep", false, "Include powermetrics CPU cluster and GPU data (requires sudo)")
	flags.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVar(&opts.table, "table", false, "Human-readable table output")
	flags.BoolVar(&opts.yaml, "yaml", false, "YAML output")
	flags.IntVar(&opts.top, "top", 0, "Number of top CPU processes to report (default from config: 5)")
	flags.StringVar(&opts.configPath, "config", "", "Config file path (default: ~/.machealth/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
}

func execute(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) error {
	if cmd.Flags().Changed("top") && opts.top <= 0 {
		return fmt.Errorf("--top must be positive (got: %d)", opts.top)
	}

	cli := config.CLIOverrides{
		Deep:         opts.deep,
		TopProcesses: opts.top,
		LogLevel:     opts.logLevel,
	}
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadLayered(cli, embeddedConfig, opts.configPath)
	} else {
		cfg, err = config.LoadLayered(cli, embeddedConfig)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		return nil
	}

	logger, closeLog := initLogger(cfg, stderr)
	defer closeLog()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	format := render.SelectFormat(opts.table, opts.pretty, opts.yaml, render.Format(cfg.Output.Format))
	runner := command.NewCaching(command.NewExec(cfg.Paths.Extra))

	report := collect(cmd.Context(), cfg, runner, logger, time.Now())

	if err := render.Render(stdout, report, format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("Report written",
		zap.String("status", string(report.Status)),
		zap.Int("warnings", len(report.Warnings)),
		zap.String("format", string(format)))
	return nil
}

// collect runs one collection pass and assembles the report.
func collect(ctx context.Context, cfg *config.Config, runner command.Runner, logger *zap.Logger, now time.Time) *models.Report {
	mode := models.ModeQuick
	if cfg.Collection.Deep {
		mode = models.ModeDeep
	}

	logger.Info("Starting collection",
		zap.String("version", version),
		zap.String("mode", string(mode)),
		zap.String("platform", platform.Name()))

	if !platform.Supported() {
		logger.Warn("Unsupported platform, most sections will report errors",
			zap.String("platform", platform.Name()))
	}
	if cfg.Collection.Deep && !platform.IsElevated() {
		logger.Warn("Deep mode without root, powermetrics relies on non-interactive sudo")
	}

	registry := newRegistry(cfg, runner, logger)
	results := registry.CollectAll(ctx)

	return aggregate.Build(mode, now.Format(timestampLayout), results)
}

// newRegistry registers collectors in report order. The deep collectors are
// registered too but only run when deep mode is enabled.
func newRegistry(cfg *config.Config, runner command.Runner, logger *zap.Logger) *collector.Registry {
	timeouts := collector.Timeouts{
		Default:      cfg.Timeouts.Default.Duration,
		Availability: cfg.Timeouts.Availability.Duration,
		Sampling:     cfg.Timeouts.Sampling.Duration,
	}
	device := cfg.Collection.InternalDevice
	deep := cfg.Collection.Deep

	registry := collector.NewRegistry(logger)
	registry.Register(collector.NewCPUCollector(runner, timeouts))
	registry.Register(collector.NewMemoryCollector(runner, timeouts))
	registry.Register(collector.NewTemperatureCollector(runner, timeouts, device))
	registry.Register(collector.NewDiskInternalCollector(runner, timeouts, device))
	registry.Register(collector.NewDiskExternalCollector(runner, timeouts))
	registry.Register(collector.NewDockerCollector(runner, timeouts))
	registry.Register(collector.NewProcessCollector(runner, timeouts, cfg.Collection.TopProcesses))
	registry.Register(collector.NewHostCollector())
	registry.Register(collector.NewCPUDeepCollector(runner, timeouts, deep))
	registry.Register(collector.NewGPUDeepCollector(runner, timeouts, deep))
	return registry
}
