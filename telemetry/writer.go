// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// policySuffix maps a replacement policy name to its CSV filename suffix.
var policySuffix = map[string]string{
	"random":  "_random",
	"bestfit": "_bestfit",
	"lru":     "_lru",
	"camp":    "_camp",
}

// OutputPath computes the output CSV path for a trace file and policy:
// testOutput/<basename><_policy>.csv, where basename is the trace filename
// stripped of its testTraces/ directory prefix and .trace suffix.
func OutputPath(outputDir, traceFile, policy string) string {
	base := filepath.Base(traceFile)
	base = strings.TrimSuffix(base, ".trace")
	suffix, ok := policySuffix[policy]
	if !ok {
		suffix = "_" + policy
	}
	return filepath.Join(outputDir, base+suffix+".csv")
}

// Recorder writes telemetry rows to an append-only CSV destination. It is
// owned exclusively by the trace driver for the lifetime of one run.
type Recorder struct {
	w          *csv.Writer
	closer     io.Closer
	evictCount int64
}

// NewRecorder creates (or truncates) the CSV file at path, writes the
// header, and an optional leading "#run=... trace_sha256=..." provenance
// comment line ahead of it.
func NewRecorder(path string, provenanceComment string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", path, err)
	}

	if provenanceComment != "" {
		if _, err := fmt.Fprintln(f, "#"+provenanceComment); err != nil {
			f.Close()
			return nil, fmt.Errorf("telemetry: write provenance comment: %w", err)
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(strings.Split(Header, ",")); err != nil {
		f.Close()
		return nil, fmt.Errorf("telemetry: write header: %w", err)
	}

	return &Recorder{w: w, closer: f}, nil
}

// Record appends one row.
func (r *Recorder) Record(row Row) error {
	record := []string{
		strconv.FormatUint(uint64(row.MemAddress), 16),
		strconv.Itoa(boolToInt(row.IfHit)),
		strconv.Itoa(boolToInt(row.IfEvict)),
		strconv.Itoa(row.RoundedCompSize),
		strconv.Itoa(row.Timestamp),
		strconv.Itoa(boolToInt(row.Comp.IsZero)),
		strconv.Itoa(boolToInt(row.Comp.IsSame)),
		strconv.Itoa(row.Comp.CompSize),
		strconv.Itoa(row.Comp.K),
		strconv.Itoa(row.Comp.BaseNum),
	}
	if err := r.w.Write(record); err != nil {
		return fmt.Errorf("telemetry: write row: %w", err)
	}
	if row.IfEvict {
		r.evictCount++
	}
	return nil
}

// EvictCount returns the number of eviction rows recorded so far.
func (r *Recorder) EvictCount() int64 { return r.evictCount }

// Close flushes buffered rows and closes the underlying file.
func (r *Recorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.closer.Close()
		return fmt.Errorf("telemetry: flush: %w", err)
	}
	return r.closer.Close()
}
