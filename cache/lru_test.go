// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "testing"

func TestLRUPolicy_EvictsOldestFirst(t *testing.T) {
	s := NewSet()
	oldest := NewLine(1, descOfSize(16))
	middle := NewLine(2, descOfSize(16))
	newest := NewLine(3, descOfSize(16))
	s.InsertIfFits(oldest)
	s.InsertIfFits(middle)
	s.InsertIfFits(newest)
	s.InsertIfFits(NewLine(4, descOfSize(16)))
	// remainingSize = 0 now.

	oldest.Timestamp = 5
	middle.Timestamp = 3
	newest.Timestamp = 0

	tel := newTestRecorder(t)
	defer tel.Close()

	p := LRUPolicy{}
	if err := p.Evict(s, 16, 0, tel.Recorder); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}
	if s.Lookup(1) != nil {
		t.Fatal("expected the line with the largest timestamp (tag 1) to be evicted first")
	}
	if s.Lookup(3) == nil {
		t.Fatal("the most-recently-used line (tag 3) should not have been evicted")
	}
}

func TestLRUPolicy_Name(t *testing.T) {
	if (LRUPolicy{}).Name() != "lru" {
		t.Fatal("Name() mismatch")
	}
}
