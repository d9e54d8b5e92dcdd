// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"bufio"
	"context"
	"io"
	"math/rand"

	"github.com/patricklfdm/bdisim/bdi"
	"github.com/patricklfdm/bdisim/cache"
	"github.com/patricklfdm/bdisim/simlog"
	"github.com/patricklfdm/bdisim/telemetry"
)

// Driver feeds (op, addr) trace records into a Cache one at a time to
// completion, maintaining Stats and emitting telemetry. It owns the
// single RNG draw used to pick which of the five pre-compressed seed
// samples backs a miss.
type Driver struct {
	Cache    *cache.Cache
	Policy   cache.Policy
	Seeds    [SeedCount]bdi.CompressionDescriptor
	Recorder *telemetry.Recorder
	Log      *simlog.Logger
	rng      *rand.Rand
}

// NewDriver builds a driver over an already-open Cache, policy, seed
// samples, and telemetry recorder. rng supplies the miss-sample draw;
// pass a *rand.Rand seeded once per process (config.Config.RandSeed),
// never one reseeded per draw.
func NewDriver(c *cache.Cache, policy cache.Policy, seeds [SeedCount]bdi.CompressionDescriptor, rec *telemetry.Recorder, log *simlog.Logger, rng *rand.Rand) *Driver {
	return &Driver{Cache: c, Policy: policy, Seeds: seeds, Recorder: rec, Log: log, rng: rng}
}

// sample draws the pseudo-random seed index used on a cache miss, per
// spec.md §4.7 step 4 -- called lazily so a hit never consumes an RNG draw.
func (d *Driver) sample() bdi.CompressionDescriptor {
	return d.Seeds[d.rng.Intn(SeedCount)]
}

// Run processes every trace record in r to completion, one at a time
// (synchronous, single-threaded; ctx is consulted only
// between records, never mid-record). It returns the accumulated Stats
// or the first fatal error encountered.
func (d *Driver) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		op, addr, perr := ParseLine(line)
		if perr != nil {
			d.Log.Warn("skipping unparseable trace line", perr)
			continue
		}

		stats.InstructionCount++
		switch op {
		case 'l':
			stats.LoadCount++
		case 's':
			stats.StoreCount++
		}

		hit, aerr := d.Cache.Access(addr, d.sample, d.Policy, d.Recorder)
		if aerr != nil {
			return stats, aerr
		}
		if hit {
			switch op {
			case 'l':
				stats.LoadHitCount++
			case 's':
				stats.StoreHitCount++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, newIOError("scan", "trace", err)
	}

	stats.EvictCount = d.Recorder.EvictCount()
	return stats, nil
}
