// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "github.com/patricklfdm/bdisim/telemetry"

// CAMPPolicy is the Compression-Aware Management Policy: a size-weighted
// RRIP variant. Each line's Marginal Value of Eviction is
// MVE = RRVP / weight(RoundedSize); the victim is whichever line has the
// largest MVE (ties: first found). Weights are stored in each set and
// retrained periodically by CAMPTrainer (see camp_trainer.go), which
// installs the same table into every set.
type CAMPPolicy struct{}

func (CAMPPolicy) Name() string { return "camp" }

func (CAMPPolicy) Evict(set *Set, need int, causeAddr uint32, tel *telemetry.Recorder) error {
	if set.NumLines() == 0 {
		return ErrEmptySet
	}
	for set.RemainingSize() < need {
		if set.NumLines() == 0 {
			return ErrEmptySet
		}

		victimIdx, highestRRVP := campVictim(set)
		victim := set.RemoveByIndex(victimIdx)

		if err := tel.Record(evictionRow(causeAddr, victim)); err != nil {
			return err
		}

		if delta := RRVPMax - highestRRVP; delta > 0 {
			for _, l := range set.Lines() {
				l.RRVP = min(l.RRVP+delta, RRVPMax)
			}
		}

		// History is updated on hits and evictions, not clean admissions;
		// the value pushed here is the *incoming* line's rounded size.
		set.pushHistory(need)
	}
	return nil
}

// campVictim scans every resident line for the largest MVE (RRVP divided
// by its size class's current weight) and the highest RRVP present,
// returning the winning line's index and that highest RRVP.
func campVictim(set *Set) (victimIdx int, highestRRVP int) {
	victimIdx = -1
	bestMVE := -1
	for i, l := range set.Lines() {
		if l.RRVP > highestRRVP {
			highestRRVP = l.RRVP
		}
		mve := l.RRVP / set.campWeight(l.RoundedSize)
		if mve > bestMVE {
			bestMVE = mve
			victimIdx = i
		}
	}
	return victimIdx, highestRRVP
}

// CAMPOnHit applies CAMP's per-line bookkeeping for a cache hit: the hit
// line's RRVP decrements (saturating at 0) and its rounded size is pushed
// into the set's history buffer.
func CAMPOnHit(set *Set, hit *Line) {
	if hit.RRVP > 0 {
		hit.RRVP--
	}
	set.pushHistory(hit.RoundedSize)
}
