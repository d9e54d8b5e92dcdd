// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import (
	"github.com/patricklfdm/bdisim/bdi"
	"github.com/patricklfdm/bdisim/telemetry"
)

// Cache is the full 512-set compressed cache. It owns no replacement
// policy of its own; the policy used for eviction is supplied on every
// Access call, since the trace driver selects one policy for an entire
// run.
type Cache struct {
	sets    [NumSets]*Set
	trainer *CAMPTrainer
}

// NewCache builds an empty cache: every set starts at full budget with
// the identity CAMP weight ramp, and the CAMP trainer is armed for its
// first retrain period. The trainer only ever advances when the run's
// policy is CAMP (see Access).
func NewCache() *Cache {
	c := &Cache{trainer: NewCAMPTrainer()}
	for i := range c.sets {
		c.sets[i] = NewSet()
	}
	return c
}

// Access runs one trace entry through the cache: a lookup, then either
// the hit path (timestamp/RRIP bookkeeping) or the miss path (admission,
// evicting via policy first if the set has no room). One telemetry row is
// recorded for the access itself; Evict records its own rows for any
// lines it frees, before the access's row, matching the reference's
// output ordering. sample is only invoked on a miss -- the reference only
// draws its random seed-sample index after ifHit fails, and callers should
// not burn an RNG draw on every access just to discard it on a hit.
// The bool result reports whether the access was a hit, so the caller
// (trace.Driver) can maintain its own load/store hit counters without
// this package needing to know about operation kinds.
func (c *Cache) Access(addr uint32, sample func() bdi.CompressionDescriptor, policy Policy, tel *telemetry.Recorder) (hit bool, err error) {
	parts := Decode(addr)
	set := c.sets[parts.Index]

	if line := set.Lookup(parts.Tag); line != nil {
		return true, c.hit(addr, set, line, policy, tel)
	}
	return false, c.miss(addr, parts.Tag, sample(), set, policy, tel)
}

func (c *Cache) hit(addr uint32, set *Set, line *Line, policy Policy, tel *telemetry.Recorder) error {
	// The row carries the timestamp the line had when it was matched, before
	// the recency reset.
	prevTimestamp := line.Timestamp
	line.Timestamp = 0
	set.touchOthers(line)
	if policy.Name() == "camp" {
		CAMPOnHit(set, line)
	}

	row := telemetry.Row{
		MemAddress:      addr,
		IfHit:           true,
		IfEvict:         false,
		RoundedCompSize: line.RoundedSize,
		Timestamp:       prevTimestamp,
		Comp:            line.Result,
	}
	if err := tel.Record(row); err != nil {
		return err
	}

	c.tickTrainer(policy)
	return nil
}

func (c *Cache) miss(addr uint32, tag uint32, result bdi.CompressionDescriptor, set *Set, policy Policy, tel *telemetry.Recorder) error {
	line := NewLine(tag, result)
	if line.RoundedSize > SetBudget {
		return ErrCapacity
	}

	// A miss still ages the set: every resident line's timestamp increments
	// before the incoming line (timestamp 0) is admitted, so eviction rows
	// report the aged values.
	set.touchOthers(nil)

	if !set.InsertIfFits(line) {
		if err := policy.Evict(set, line.RoundedSize, addr, tel); err != nil {
			return err
		}
		if !set.InsertIfFits(line) {
			return errInternalInvariant(line.RoundedSize, set.RemainingSize())
		}
	}

	row := telemetry.Row{
		MemAddress:      addr,
		IfHit:           false,
		IfEvict:         false,
		RoundedCompSize: line.RoundedSize,
		Timestamp:       line.Timestamp,
		Comp:            line.Result,
	}
	if err := tel.Record(row); err != nil {
		return err
	}

	c.tickTrainer(policy)
	return nil
}

// tickTrainer advances the CAMP retrain countdown once per access, but
// only when CAMP is the run's active policy -- the other three policies
// never consult campWeights, so training them would be wasted work.
func (c *Cache) tickTrainer(policy Policy) {
	if policy.Name() != "camp" {
		return
	}
	c.trainer.Tick(c.sets[:])
}
