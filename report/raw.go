package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/anyof/sweep"
)

// WriteRaw writes every report as gzip-compressed JSON lines, one object per
// scenario. The dump carries the full per-K sample sets, which the textual
// report summarizes away.
func WriteRaw(w io.Writer, reports []*sweep.Report) error {
	gz := gzip.NewWriter(w)
	enc := json.NewEncoder(gz)

	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode raw report %q: %w", r.Scenario, err)
		}
	}

	return gz.Close()
}

// ReadRaw decodes a dump produced by WriteRaw.
func ReadRaw(r io.Reader) ([]*sweep.Report, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open raw dump: %w", err)
	}
	defer gz.Close()

	var reports []*sweep.Report
	dec := json.NewDecoder(gz)
	for dec.More() {
		var rep sweep.Report
		if err := dec.Decode(&rep); err != nil {
			return nil, fmt.Errorf("decode raw report: %w", err)
		}
		reports = append(reports, &rep)
	}

	return reports, nil
}
