// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"encoding/hex"

	"github.com/google/uuid"
	sha256simd "github.com/minio/sha256-simd"
)

// RunMetadata identifies one simulation run for correlating its CSV
// output against its log lines: a random run id and a digest of the
// trace bytes it processed, both logged once at the start of a run and
// written as the CSV's leading provenance comment.
type RunMetadata struct {
	RunID       uuid.UUID
	TraceSHA256 string
}

// NewRunMetadata mints a run id and digests traceBytes with the
// assembly-backed sha256-simd implementation (chosen over crypto/sha256
// for the same bulk-buffer throughput reason go-fil-commp-hashhash uses
// it: trace files can run into the hundreds of megabytes).
func NewRunMetadata(traceBytes []byte) RunMetadata {
	sum := sha256simd.Sum256(traceBytes)
	return RunMetadata{
		RunID:       uuid.New(),
		TraceSHA256: hex.EncodeToString(sum[:]),
	}
}

// ProvenanceComment renders the metadata as the CSV's leading "#run=...
// trace_sha256=..." line.
func (m RunMetadata) ProvenanceComment() string {
	return "run=" + m.RunID.String() + " trace_sha256=" + m.TraceSHA256
}
