// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "github.com/patricklfdm/bdisim/telemetry"

// Policy is the closed set of replacement strategies: RANDOM, BEST-FIT,
// LRU, and CAMP. Each is a concrete type implementing Evict, modeled as a
// tagged sum type rather than a shared base/inheritance hierarchy, so a
// switch on concrete policy never appears here.
type Policy interface {
	// Name identifies the policy for telemetry filenames and logging.
	Name() string
	// Evict removes lines from set until its remaining budget is at least
	// need bytes, emitting one telemetry row per eviction. causeAddr is the
	// address of the access that triggered eviction -- it is carried on
	// every eviction row, not the evicted line's own (untracked) address,
	// matching the reference implementation.
	Evict(set *Set, need int, causeAddr uint32, tel *telemetry.Recorder) error
}

// evictionRow builds the telemetry row for one evicted line.
func evictionRow(causeAddr uint32, victim *Line) telemetry.Row {
	return telemetry.Row{
		MemAddress:      causeAddr,
		IfHit:           false,
		IfEvict:         true,
		RoundedCompSize: victim.RoundedSize,
		Timestamp:       victim.Timestamp,
		Comp:            victim.Result,
	}
}
