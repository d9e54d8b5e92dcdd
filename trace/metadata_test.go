// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRunMetadata_DigestsTraceBytes(t *testing.T) {
	meta := NewRunMetadata([]byte("l 0x1000\n"))

	require.NotEmpty(t, meta.RunID.String())
	require.Len(t, meta.TraceSHA256, 64)

	// Same bytes, same digest; the run id is fresh every time.
	again := NewRunMetadata([]byte("l 0x1000\n"))
	require.Equal(t, meta.TraceSHA256, again.TraceSHA256)
	require.NotEqual(t, meta.RunID, again.RunID)
}

func TestRunMetadata_ProvenanceComment(t *testing.T) {
	meta := NewRunMetadata([]byte("s 0x20\n"))
	comment := meta.ProvenanceComment()

	require.True(t, strings.HasPrefix(comment, "run="+meta.RunID.String()))
	require.Contains(t, comment, " trace_sha256="+meta.TraceSHA256)
}
