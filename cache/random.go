// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import (
	"math/rand"

	"github.com/patricklfdm/bdisim/telemetry"
)

// RandomPolicy evicts uniformly-chosen lines until enough room is freed.
// The reference implementation reseeds its RNG from wall-clock time on
// every draw, which skews the distribution under fast loops; this type instead
// takes one *rand.Rand seeded once per run (see config.Config.RandSeed),
// per the corrected behavior.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy returns a RANDOM policy drawing from rng.
func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) Evict(set *Set, need int, causeAddr uint32, tel *telemetry.Recorder) error {
	if set.NumLines() == 0 {
		return ErrEmptySet
	}
	for set.RemainingSize() < need {
		if set.NumLines() == 0 {
			return ErrEmptySet
		}
		idx := p.rng.Intn(set.NumLines())
		victim := set.RemoveByIndex(idx)
		if err := tel.Record(evictionRow(causeAddr, victim)); err != nil {
			return err
		}
	}
	return nil
}
