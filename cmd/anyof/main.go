// Command anyof runs the parallel any-match benchmark suite and writes the
// per-scenario report to a file.
//
// Usage:
//
//	anyof                         # reference scenario, results.txt
//	anyof -n 1000000 --seed 42    # smaller run, reproducible data
//	anyof --config anyof.yaml --raw samples.json.gz --verbose
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/anyof"
	"github.com/hupe1980/anyof/config"
	"github.com/hupe1980/anyof/report"
	"github.com/hupe1980/anyof/sweep"
)

type rootOptions struct {
	configPath string
	n          int
	seed       int64
	runs       int
	output     string
	rawOutput  string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "anyof",
		Short: "Benchmark parallel any-match search strategies",
		Long: `Benchmark a partitioned any-match engine against whole-slice scan
strategies across three data-placement scenarios (worst, best, average),
sweeping the concurrency fan-out K and reporting the fastest K per scenario.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	flags.IntVarP(&opts.n, "n", "n", 0, "sequence length per scenario (overrides config)")
	flags.Int64Var(&opts.seed, "seed", -1, "random seed (overrides config; runs with equal seeds are reproducible)")
	flags.IntVar(&opts.runs, "runs", 0, "samples per candidate K, minimum recorded (overrides config)")
	flags.StringVarP(&opts.output, "out", "o", "", "report file path (overrides config)")
	flags.StringVar(&opts.rawOutput, "raw", "", "optional gzip JSON-lines raw sample dump path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := anyof.NewTextLogger(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := anyof.New(cfg, anyof.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("starting benchmark",
		"run_id", runner.RunID(),
		"n", cfg.N,
		"seed", cfg.Seed,
		"scenarios", cfg.Scenarios,
		"output", cfg.Output,
	)

	reports, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(cfg.Output, reports); err != nil {
		return err
	}
	logger.Info("report written", "path", cfg.Output)

	if cfg.RawOutput != "" {
		if err := writeRaw(cfg.RawOutput, reports); err != nil {
			return err
		}
		logger.Info("raw samples written", "path", cfg.RawOutput)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "All results have been written to %s\n", cfg.Output)

	return nil
}

// resolveConfig layers CLI flags on top of the config file (or defaults).
func resolveConfig(opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if opts.n > 0 {
		cfg.N = opts.n
	}
	if opts.seed >= 0 {
		cfg.Seed = opts.seed
	}
	if opts.runs > 0 {
		cfg.RunsPerK = opts.runs
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.rawOutput != "" {
		cfg.RawOutput = opts.rawOutput
	}

	return cfg, cfg.Validate()
}

// writeReport creates the report file and renders every scenario block into
// it. A failure to open or write the sink is fatal to the run.
func writeReport(path string, reports []*sweep.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}

	if err := report.RenderAll(f, reports); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

func writeRaw(path string, reports []*sweep.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open raw dump: %w", err)
	}

	if err := report.WriteRaw(f, reports); err != nil {
		f.Close()
		return fmt.Errorf("write raw dump: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close raw dump: %w", err)
	}
	return nil
}
