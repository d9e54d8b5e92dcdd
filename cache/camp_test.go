// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "testing"

func TestCAMPPolicy_EvictsHighestMVE(t *testing.T) {
	s := NewSet()
	cold := NewLine(1, descOfSize(16)) // weight 4, RRVP 8 -> MVE 2
	hot := NewLine(2, descOfSize(16))  // weight 4, RRVP 0 -> MVE 0
	s.InsertIfFits(cold)
	s.InsertIfFits(hot)
	s.InsertIfFits(NewLine(3, descOfSize(16)))
	s.InsertIfFits(NewLine(4, descOfSize(16)))
	// remainingSize = 0 now, every line weight = campWeight(16) = 4.

	cold.RRVP = RRVPMax
	hot.RRVP = 0

	tel := newTestRecorder(t)
	defer tel.Close()

	p := CAMPPolicy{}
	if err := p.Evict(s, 16, 0xBEEF, tel.Recorder); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}
	if s.Lookup(1) != nil {
		t.Fatal("expected the line with the highest MVE (tag 1, RRVP saturated) to be evicted")
	}
	if s.Lookup(2) == nil {
		t.Fatal("the coldest-MVE line (tag 2) should not have been evicted")
	}
}

func TestCAMPPolicy_BroadcastsRRVPAfterEviction(t *testing.T) {
	// After each eviction, every remaining line's RRVP is raised by
	// RRVPMax minus the highest RRVP seen in the victim scan. Here lines 3
	// and 4 stay at RRVPMax, so some line's RRVP = RRVPMax afterwards.
	s := NewSet()
	victim := NewLine(1, descOfSize(16))
	survivor := NewLine(2, descOfSize(16))
	s.InsertIfFits(victim)
	s.InsertIfFits(survivor)
	s.InsertIfFits(NewLine(3, descOfSize(16)))
	s.InsertIfFits(NewLine(4, descOfSize(16)))

	victim.RRVP = RRVPMax
	survivor.RRVP = 2

	tel := newTestRecorder(t)
	defer tel.Close()

	p := CAMPPolicy{}
	if err := p.Evict(s, 16, 0, tel.Recorder); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}

	foundSaturated := false
	for _, l := range s.Lines() {
		if l.RRVP == RRVPMax {
			foundSaturated = true
		}
	}
	if !foundSaturated {
		t.Fatal("expected at least one resident line's RRVP to be saturated at RRVPMax after eviction")
	}
}

func TestCAMPOnHit_DecrementsRRVPAndPushesHistory(t *testing.T) {
	s := NewSet()
	hit := NewLine(1, descOfSize(16))
	s.InsertIfFits(hit)
	hit.RRVP = 3

	CAMPOnHit(s, hit)
	if hit.RRVP != 2 {
		t.Fatalf("RRVP = %d, want 2", hit.RRVP)
	}

	snap := s.historySnapshot()
	if snap[0] != 16 {
		t.Fatalf("history[0] = %d, want 16 (the hit line's rounded size)", snap[0])
	}
}

func TestCAMPOnHit_RRVPSaturatesAtZero(t *testing.T) {
	s := NewSet()
	hit := NewLine(1, descOfSize(16))
	s.InsertIfFits(hit)
	hit.RRVP = 0

	CAMPOnHit(s, hit)
	if hit.RRVP != 0 {
		t.Fatalf("RRVP = %d, want to stay saturated at 0", hit.RRVP)
	}
}

func TestCAMPPolicy_Name(t *testing.T) {
	if (CAMPPolicy{}).Name() != "camp" {
		t.Fatal("Name() mismatch")
	}
}
