// Package sweep drives the partitioned any-match engine across a set of
// candidate fan-out values and picks the fastest one per scenario.
package sweep

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/anyof/scan"
	"github.com/hupe1980/anyof/timing"
)

// ErrNoCandidates is returned when every candidate K was skipped or failed,
// leaving nothing to pick a best K from.
var ErrNoCandidates = errors.New("no candidate k produced a measurement")

// defaultRunsPerK is the best-of-N sample count. Three samples per K is
// enough to shave scheduler-noise spikes off the minimum.
const defaultRunsPerK = 3

// Config configures an Analyzer.
type Config struct {
	// Target is the value the fixed equality predicate matches.
	Target int

	// RunsPerK is the number of repeated engine runs per candidate K; the
	// minimum of the samples is recorded. Defaults to 3.
	RunsPerK int

	// MaxProcs overrides the detected hardware parallelism P. Zero means
	// runtime.GOMAXPROCS(0). Tests use this to pin the candidate set.
	MaxProcs int

	// Ks overrides the candidate fan-out set. Empty means CandidateKs(P).
	Ks []int

	// Logger receives per-measurement progress. Nil disables logging.
	Logger *slog.Logger
}

// RefTiming is a single-shot measurement of one whole-slice reference
// strategy.
type RefTiming struct {
	Name    string  `json:"name"`
	Seconds float64 `json:"seconds"`
}

// KTiming is the measurement record for one candidate fan-out.
type KTiming struct {
	K       int       `json:"k"`
	Seconds float64   `json:"seconds"` // minimum of Samples
	Mean    float64   `json:"mean"`
	Stddev  float64   `json:"stddev"`
	Samples []float64 `json:"samples"`
}

// Report is the full measurement record for one scenario.
type Report struct {
	RunID      string      `json:"run_id,omitempty"`
	Scenario   string      `json:"scenario"`
	N          int         `json:"n"`
	Procs      int         `json:"procs"`
	References []RefTiming `json:"references"`
	Timings    []KTiming   `json:"timings"`
	BestK      int         `json:"best_k"`
	BestSecs   float64     `json:"best_seconds"`
	Ratio      float64     `json:"ratio"` // BestK / Procs
}

// CandidateKs builds the ordered candidate fan-out set for hardware
// parallelism p: {1} plus every value up to p, and for p > 1 the
// over-subscription probes 2p and max(4p, 8), deduplicated ascending.
func CandidateKs(p int) []int {
	if p < 1 {
		p = 1
	}

	ks := []int{1}
	for k := 2; k <= p; k++ {
		ks = append(ks, k)
	}
	if p > 1 {
		ks = append(ks, 2*p, max(4*p, 8))
	}

	sort.Ints(ks)
	return dedupSorted(ks)
}

func dedupSorted(ks []int) []int {
	out := ks[:0]
	for i, k := range ks {
		if i == 0 || k != ks[i-1] {
			out = append(out, k)
		}
	}
	return out
}

// Analyzer measures one scenario at a time. It issues engine calls strictly
// sequentially; all parallelism lives inside the measured operations.
type Analyzer struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Analyzer, applying config defaults.
func New(cfg Config) *Analyzer {
	if cfg.RunsPerK < 1 {
		cfg.RunsPerK = defaultRunsPerK
	}
	if cfg.MaxProcs < 1 {
		cfg.MaxProcs = runtime.GOMAXPROCS(0)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Analyzer{cfg: cfg, logger: logger}
}

// Analyze measures the reference strategies and the K sweep over seq and
// returns the per-scenario report. seq is read-only for the duration of the
// call.
func (a *Analyzer) Analyze(name string, seq []int) (*Report, error) {
	n := len(seq)
	p := a.cfg.MaxProcs
	target := a.cfg.Target
	pred := func(v int) bool { return v == target }

	logger := a.logger.With("scenario", name, "n", n)

	report := &Report{
		Scenario:   name,
		N:          n,
		Procs:      p,
		References: a.measureReferences(seq, pred, logger),
	}

	ks := a.cfg.Ks
	if len(ks) == 0 {
		ks = CandidateKs(p)
	}

	best := math.MaxFloat64
	bestK := 0

	for _, k := range ks {
		// Over-partitioning probes beyond both the data and 2P tell us
		// nothing; modest over-subscription (K <= 2P) is still measured.
		if k > n && k > 2*p {
			logger.Debug("skipping candidate", "k", k)
			continue
		}

		kt, err := a.measureK(seq, k, pred)
		if err != nil {
			// A bad candidate aborts this measurement, not the sweep.
			logger.Warn("candidate failed", "k", k, "error", err)
			continue
		}

		logger.Debug("candidate measured", "k", k, "seconds", kt.Seconds)
		report.Timings = append(report.Timings, kt)

		if kt.Seconds < best {
			best = kt.Seconds
			bestK = k
		}
	}

	if bestK == 0 {
		return nil, ErrNoCandidates
	}

	report.BestK = bestK
	report.BestSecs = best
	report.Ratio = float64(bestK) / float64(p)

	logger.Info("sweep complete",
		"best_k", report.BestK,
		"best_seconds", report.BestSecs,
		"procs", p,
		"ratio", report.Ratio,
	)

	return report, nil
}

// measureK runs the engine RunsPerK times at fan-out k and records the
// best-of-N sample along with summary statistics.
func (a *Analyzer) measureK(seq []int, k int, pred scan.Predicate) (KTiming, error) {
	samples := make([]float64, 0, a.cfg.RunsPerK)

	for run := 0; run < a.cfg.RunsPerK; run++ {
		var (
			found  bool
			runErr error
		)
		secs := timing.Seconds(func() {
			found, runErr = scan.AnyMatch(seq, k, pred)
		})
		if runErr != nil {
			return KTiming{}, runErr
		}
		timing.KeepAlive(found)

		samples = append(samples, secs)
	}

	return summarize(k, samples), nil
}

// summarize reduces the samples for one candidate to its best-of-N record.
func summarize(k int, samples []float64) KTiming {
	return KTiming{
		K:       k,
		Seconds: floats.Min(samples),
		Mean:    stat.Mean(samples, nil),
		Stddev:  sampleStddev(samples),
		Samples: samples,
	}
}

// measureReferences takes one single-shot timing per whole-slice strategy.
// These sit outside the best-of-N loop: they are orientation points, not
// sweep candidates.
func (a *Analyzer) measureReferences(seq []int, pred scan.Predicate, logger *slog.Logger) []RefTiming {
	strategies := []struct {
		name string
		fn   func([]int, scan.Predicate) bool
	}{
		{"sequential", scan.Sequential},
		{"range-sequential", scan.RangeSequential},
		{"range-parallel", scan.RangeParallel},
		{"range-speculative", scan.RangeSpeculative},
	}

	refs := make([]RefTiming, 0, len(strategies))
	for _, s := range strategies {
		var found bool
		secs := timing.Seconds(func() {
			found = s.fn(seq, pred)
		})
		timing.KeepAlive(found)

		logger.Debug("reference measured", "strategy", s.name, "seconds", secs)
		refs = append(refs, RefTiming{Name: s.name, Seconds: secs})
	}

	return refs
}

func sampleStddev(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	return stat.StdDev(samples, nil)
}
