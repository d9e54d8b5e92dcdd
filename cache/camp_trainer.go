// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "sort"

// campTrainPeriod is the number of CAMP-policy accesses between retrains
// (CAMP_training_counter's initial value in the reference).
const campTrainPeriod = 160

// CAMPTrainer retrains the CAMP weight table every campTrainPeriod
// accesses, built from the access histogram folded across every set's
// history ring (compressedCache.c's CAMPWeightUpdate). Weights are global:
// every set in the cache receives the same freshly trained table.
type CAMPTrainer struct {
	countdown int
}

// NewCAMPTrainer returns a trainer armed for the first retrain period.
func NewCAMPTrainer() *CAMPTrainer {
	return &CAMPTrainer{countdown: campTrainPeriod}
}

// Tick counts one CAMP-policy access and retrains sets when the period
// elapses, resetting the countdown.
func (t *CAMPTrainer) Tick(sets []*Set) {
	t.countdown--
	if t.countdown > 0 {
		return
	}
	t.countdown = campTrainPeriod
	retrain(sets)
}

type classCount struct {
	class int
	count int
}

// retrain folds every set's history ring into an 8-bucket histogram keyed
// by size class (rounded-size/4 - 1, 0..7; a history slot holding the sentinel
// 0 is an unused slot and is skipped), ranks classes by descending access
// count, and assigns weight 8-rank to the class at that rank (rank 0, the
// most-accessed class, gets the top weight 8). Ties break by ascending
// class index, for reproducibility across runs.
func retrain(sets []*Set) {
	var counts [weightClasses]int
	for _, s := range sets {
		hist := s.historySnapshot()
		for _, roundedSize := range hist {
			if roundedSize == 0 {
				continue
			}
			class := roundedSize/4 - 1
			counts[class]++
		}
	}

	ranked := make([]classCount, weightClasses)
	for c := 0; c < weightClasses; c++ {
		ranked[c] = classCount{class: c, count: counts[c]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].class < ranked[j].class
	})

	var weights [weightClasses]int
	for rank, rc := range ranked {
		weights[rc.class] = weightClasses - rank
	}

	for _, s := range sets {
		s.setWeights(weights)
		s.resetHistory()
	}
}
