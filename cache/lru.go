// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import (
	"sort"

	"github.com/patricklfdm/bdisim/telemetry"
)

// LRUPolicy evicts the least-recently-used lines first: timestamps
// increase every tick a line isn't the one hit, so the largest timestamp
// is the oldest access. Candidates are snapshotted and sorted once, then
// removed in that order until enough room is freed.
type LRUPolicy struct{}

func (LRUPolicy) Name() string { return "lru" }

func (LRUPolicy) Evict(set *Set, need int, causeAddr uint32, tel *telemetry.Recorder) error {
	if set.NumLines() == 0 {
		return ErrEmptySet
	}

	timestamps := make([]int, set.NumLines())
	for i, l := range set.Lines() {
		timestamps[i] = l.Timestamp
	}
	sort.Sort(sort.Reverse(sort.IntSlice(timestamps)))

	for i := 0; set.RemainingSize() < need; i++ {
		if i >= len(timestamps) {
			return errInternalInvariant(need, set.RemainingSize())
		}
		victim := set.RemoveByTimestamp(timestamps[i])
		if victim == nil {
			return errInternalInvariant(need, set.RemainingSize())
		}
		if err := tel.Record(evictionRow(causeAddr, victim)); err != nil {
			return err
		}
	}
	return nil
}
