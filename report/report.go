// Package report renders sweep measurements as the textual per-scenario
// report and, optionally, as a compressed machine-readable raw dump.
package report

import (
	"fmt"
	"io"

	"github.com/hupe1980/anyof/sweep"
)

// printer accumulates the first write error so the rendering code stays
// linear instead of checking every Fprintf.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

// Render writes the textual report block for one scenario: the four
// reference timings, the per-K table, and the best-K summary. Durations are
// printed at 10-decimal precision so sub-millisecond differences survive.
func Render(w io.Writer, r *sweep.Report) error {
	p := &printer{w: w}

	p.printf("\n--- Whole-slice any-of references (%s, N=%d) ---\n", r.Scenario, r.N)
	if r.RunID != "" {
		p.printf("Run ID: %s\n", r.RunID)
	}
	for _, ref := range r.References {
		p.printf("%-18s %.10f seconds\n", ref.Name+":", ref.Seconds)
	}

	p.printf("\n--- Partitioned any-of (K sweep) ---\n")
	p.printf("K values (time in seconds, best of N):\n")
	for _, kt := range r.Timings {
		p.printf("K=%d: %.10f (mean %.10f, stddev %.10f)\n", kt.K, kt.Seconds, kt.Mean, kt.Stddev)
	}

	p.printf("\nBest K found: %d (Time: %.10f seconds)\n", r.BestK, r.BestSecs)
	p.printf("Processor threads (P): %d\n", r.Procs)
	p.printf("Best K/P ratio: %.10f\n", r.Ratio)

	return p.err
}

// RenderAll renders every report in order to a single writer.
func RenderAll(w io.Writer, reports []*sweep.Report) error {
	for _, r := range reports {
		if err := Render(w, r); err != nil {
			return err
		}
	}
	return nil
}
