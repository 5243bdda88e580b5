package anyof

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with benchmark-specific context helpers, keeping
// field names consistent across the suite.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRunID adds the run identifier field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithScenario adds a scenario field to the logger.
func (l *Logger) WithScenario(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("scenario", name),
	}
}

// WithN adds the sequence length field to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// LogGenerate logs a data-generation step.
func (l *Logger) LogGenerate(n int, seed int64, err error) {
	if err != nil {
		l.Error("sequence generation failed",
			"n", n,
			"seed", seed,
			"error", err,
		)
	} else {
		l.Info("sequence generated",
			"n", n,
			"seed", seed,
		)
	}
}

// LogScenario logs the outcome of one scenario sweep.
func (l *Logger) LogScenario(name string, bestK int, bestSeconds float64, err error) {
	if err != nil {
		l.Error("scenario failed",
			"scenario", name,
			"error", err,
		)
	} else {
		l.Info("scenario completed",
			"scenario", name,
			"best_k", bestK,
			"best_seconds", bestSeconds,
		)
	}
}
