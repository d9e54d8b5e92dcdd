// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

// Package telemetry formats and writes the per-access CSV rows the
// simulator emits: a hit produces one row; a miss produces one eviction
// row per line freed (carrying the evicted line's fields) followed by one
// admission row for the incoming line.
package telemetry

import "github.com/patricklfdm/bdisim/bdi"

// Header is the literal CSV header row.
const Header = "MemAddress,ifHit,ifEvict,roundedCompSize,timestamp,isZero,isSame,compSize,K,baseNum"

// Row is one observable event: a hit, a miss/admission, or an eviction.
type Row struct {
	MemAddress      uint32
	IfHit           bool
	IfEvict         bool
	RoundedCompSize int
	Timestamp       int
	Comp            bdi.CompressionDescriptor
}

// boolToInt renders a bool as the "0"/"1" the CSV schema expects.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
