// Package anyof benchmarks parallel any-match search strategies over large
// integer slices.
//
// The suite compares a hand-rolled partitioned engine (one goroutine per
// contiguous chunk, full join, OR reduction) against library-provided
// whole-slice scans, sweeping the fan-out K across values derived from the
// hardware parallelism and reporting the fastest K per data-placement
// scenario.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.N = 1_000_000
//
//	runner, _ := anyof.New(cfg, anyof.WithLogger(anyof.NewTextLogger(slog.LevelInfo)))
//	reports, _ := runner.Run(context.Background())
//
//	for _, r := range reports {
//	    report.Render(os.Stdout, r)
//	}
//
// Three scenarios are benchmarked by default: worst case (no match
// anywhere), best case (match at index 0) and average case (match at the
// midpoint). Data generation is driven by an explicitly seeded source, so a
// fixed seed reproduces the exact input slices.
package anyof
