// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import (
	"math"

	"github.com/patricklfdm/bdisim/telemetry"
)

// BestFitPolicy evicts the minimal-overshoot subset of resident lines that
// frees at least the needed bytes: an exact subset-sum search over the
// (small, ≤ SetBudget/4 = 16 element) multiset of rounded sizes, computed
// once per admission rather than incrementally.
//
// The reference implementation encodes candidate subsets by concatenating
// two-decimal-digit sizes into a base-100 mantissa stored in a double,
// which is lossy above ~15 digits and conflates the subset {4,0} with
// {40}. This reimplementation records subsets as explicit
// index lists instead, while preserving the observable contract: remove a
// subset whose sum ≥ goal with minimal overshoot, breaking ties by
// whichever subset depth-first enumeration (starting from index 0)
// reaches first.
type BestFitPolicy struct{}

func (BestFitPolicy) Name() string { return "bestfit" }

func (BestFitPolicy) Evict(set *Set, need int, causeAddr uint32, tel *telemetry.Recorder) error {
	if set.NumLines() == 0 {
		return ErrEmptySet
	}

	goal := need - set.RemainingSize()
	sizes := make([]int, set.NumLines())
	for i, l := range set.Lines() {
		sizes[i] = l.RoundedSize
	}

	subset := bestFitSubset(sizes, goal)
	for _, size := range subset {
		victim := set.RemoveBySize(size)
		if victim == nil {
			return errInternalInvariant(need, set.RemainingSize())
		}
		if err := tel.Record(evictionRow(causeAddr, victim)); err != nil {
			return err
		}
	}
	return nil
}

// bestFitSubset performs the exhaustive DFS over sizes[start:] described in
// BestFitPolicy's doc comment and returns the chosen subset's values (in
// the order they were selected by the winning DFS path).
func bestFitSubset(sizes []int, goal int) []int {
	bestDiff := math.MaxInt
	var bestPath, path []int

	var dfs func(start, sum int)
	dfs = func(start, sum int) {
		if sum >= goal && sum-goal < bestDiff {
			bestDiff = sum - goal
			bestPath = append([]int(nil), path...)
		}
		for i := start; i < len(sizes); i++ {
			path = append(path, sizes[i])
			dfs(i+1, sum+sizes[i])
			path = path[:len(path)-1]
		}
	}
	dfs(0, 0)

	return bestPath
}
