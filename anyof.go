package anyof

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hupe1980/anyof/config"
	"github.com/hupe1980/anyof/dataset"
	"github.com/hupe1980/anyof/sweep"
)

// Runner sequences the benchmark: for each configured scenario it generates
// a sequence, sweeps the fan-out candidates and collects the report. Every
// runner carries a unique run ID that tags its reports and log lines.
type Runner struct {
	cfg       config.Config
	scenarios []dataset.Scenario
	logger    *Logger
	maxProcs  int
	ks        []int
	runID     string
}

// New creates a Runner from a validated configuration.
func New(cfg config.Config, optFns ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		logger: NewLogger(nil),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	scenarios := make([]dataset.Scenario, 0, len(cfg.Scenarios))
	for _, name := range cfg.Scenarios {
		sc, err := scenarioByName(name)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}

	runID := uuid.NewString()

	return &Runner{
		cfg:       cfg,
		scenarios: scenarios,
		logger:    o.logger.WithRunID(runID),
		maxProcs:  o.maxProcs,
		ks:        o.ks,
		runID:     runID,
	}, nil
}

// RunID returns the unique identifier tagging this runner's reports.
func (r *Runner) RunID() string { return r.runID }

// Run executes every configured scenario in order and returns one report per
// scenario. Scenarios run strictly sequentially; the context is checked at
// each scenario boundary, so cancellation takes effect between sweeps, never
// inside a timed measurement.
func (r *Runner) Run(ctx context.Context) ([]*sweep.Report, error) {
	domain := dataset.Domain{Min: r.cfg.Domain.Min, Max: r.cfg.Domain.Max}
	src := dataset.NewSource(r.cfg.Seed)

	reports := make([]*sweep.Report, 0, len(r.scenarios))
	for _, sc := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger := r.logger.WithScenario(sc.Name)

		seq, err := src.Generate(r.cfg.N, domain, r.cfg.Target, sc.Placement)
		logger.LogGenerate(r.cfg.N, r.cfg.Seed, err)
		if err != nil {
			return nil, fmt.Errorf("generate %q: %w", sc.Name, err)
		}

		analyzer := sweep.New(sweep.Config{
			Target:   r.cfg.Target,
			RunsPerK: r.cfg.RunsPerK,
			MaxProcs: r.maxProcs,
			Ks:       r.ks,
			Logger:   logger.Logger,
		})

		rep, err := analyzer.Analyze(sc.Name, seq)
		if err != nil {
			logger.LogScenario(sc.Name, 0, 0, err)
			return nil, fmt.Errorf("analyze %q: %w", sc.Name, err)
		}
		rep.RunID = r.runID

		logger.LogScenario(sc.Name, rep.BestK, rep.BestSecs, nil)
		reports = append(reports, rep)
	}

	return reports, nil
}

func scenarioByName(name string) (dataset.Scenario, error) {
	switch name {
	case "worst":
		return dataset.Scenario{Name: "Worst Case", Placement: dataset.PlaceNone}, nil
	case "best":
		return dataset.Scenario{Name: "Best Case", Placement: dataset.PlaceFirst}, nil
	case "average":
		return dataset.Scenario{Name: "Average Case", Placement: dataset.PlaceMiddle}, nil
	default:
		return dataset.Scenario{}, fmt.Errorf("%w: %q", config.ErrUnknownScenario, name)
	}
}
