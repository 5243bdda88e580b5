package anyof

type options struct {
	logger   *Logger
	maxProcs int
	ks       []int
}

// Option configures Runner behavior beyond what the run configuration
// carries. Options exist for knobs that only make sense programmatically
// (logger injection, deterministic parallelism overrides in tests).
type Option func(*options)

// WithLogger sets the logger used by the runner and the sweep analyzer.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxProcs overrides the detected hardware parallelism P used for
// candidate K-set construction and the K/P ratio. Zero or negative values
// keep the runtime default. Primarily useful for reproducible tests.
func WithMaxProcs(p int) Option {
	return func(o *options) {
		o.maxProcs = p
	}
}

// WithCandidateKs replaces the derived candidate fan-out set with an
// explicit one. The skip rule for over-partitioning probes still applies.
func WithCandidateKs(ks ...int) Option {
	return func(o *options) {
		o.ks = ks
	}
}
