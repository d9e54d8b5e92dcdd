// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import (
	"path/filepath"
	"testing"

	"github.com/patricklfdm/bdisim/bdi"
	"github.com/patricklfdm/bdisim/telemetry"
)

// constSample returns a sample function always yielding desc, for tests
// that don't care which miss-sample slot Access would have drawn.
func constSample(desc bdi.CompressionDescriptor) func() bdi.CompressionDescriptor {
	return func() bdi.CompressionDescriptor { return desc }
}

// testRecorder wraps a telemetry.Recorder writing into a per-test temp
// file, since cache package policies require a live *telemetry.Recorder
// to record eviction rows.
type testRecorder struct {
	*telemetry.Recorder
}

func newTestRecorder(t *testing.T) *testRecorder {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.csv")
	rec, err := telemetry.NewRecorder(path, "")
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	return &testRecorder{Recorder: rec}
}
