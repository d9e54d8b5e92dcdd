// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

// Stats is the driver-level counter set, threaded through call chains
// rather than reinstated as package globals.
type Stats struct {
	InstructionCount int64
	LoadCount        int64
	LoadHitCount     int64
	StoreCount       int64
	StoreHitCount    int64
	EvictCount       int64
}

// HitRate is the overall fraction of accesses that hit.
func (s Stats) HitRate() float64 {
	if s.InstructionCount == 0 {
		return 0
	}
	return float64(s.LoadHitCount+s.StoreHitCount) / float64(s.InstructionCount)
}

// LoadHitRate is the fraction of loads that hit.
func (s Stats) LoadHitRate() float64 {
	if s.LoadCount == 0 {
		return 0
	}
	return float64(s.LoadHitCount) / float64(s.LoadCount)
}

// StoreHitRate is the fraction of stores that hit.
func (s Stats) StoreHitRate() float64 {
	if s.StoreCount == 0 {
		return 0
	}
	return float64(s.StoreHitCount) / float64(s.StoreCount)
}
