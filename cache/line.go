// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package cache

import "github.com/patricklfdm/bdisim/bdi"

// Line is a compressed cache-line record resident in a CacheSet.
type Line struct {
	Tag   uint32
	Valid bool
	Dirty bool

	Result      bdi.CompressionDescriptor
	RoundedSize int // ceil4(Result.CompSize); always in {4,8,...,32}
	Timestamp   int // 0 = most recently used, increases monotonically
	RRVP        int // re-reference prediction value, CAMP only, in [0, RRVPMax]
}

// NewLine builds a freshly-admitted cache line for tag with the given
// compression result. RRVP starts saturated (RRVPMax), matching the CAMP
// admission rule.
func NewLine(tag uint32, result bdi.CompressionDescriptor) *Line {
	return &Line{
		Tag:         tag,
		Valid:       true,
		Result:      result,
		RoundedSize: roundUp4(result.CompSize),
		Timestamp:   0,
		RRVP:        RRVPMax,
	}
}
