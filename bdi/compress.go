// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

// Compress evaluates every BDI candidate encoding for a 32-byte cache line
// and returns the descriptor with the smallest CompSize. Ties prefer the
// earlier candidate in the order below:
//
//  1. K=8 zero line                 (early return)
//  2. K=8 same-value
//  3. K=8 base+delta, delta in {1,2,4}
//  4. K=4 same-value
//  5. K=4 base+delta, delta in {1,2}
//  6. K=2 same-value                (early return)
//  7. K=2 base+delta=1
func Compress(line [LineSize]byte) CompressionDescriptor {
	// Uncompressible fallback: raw size with no granule or base chosen.
	best := CompressionDescriptor{CompSize: LineSize}

	values8 := granules(line[:], 8)
	if isZeroPackable(values8) {
		return zeroDescriptor()
	}
	if isSameValuePackable(values8) {
		cand := sameValueDescriptor(8)
		if cand.CompSize < best.CompSize {
			best = cand
		}
	} else {
		for _, delta := range [...]int{1, 2, 4} {
			compSize, baseCount := multBase(values8, delta, 8, 2)
			if compSize < best.CompSize {
				best = CompressionDescriptor{CompSize: compSize, K: 8, BaseNum: baseCount}
			}
		}
	}

	values4 := granules(line[:], 4)
	if isSameValuePackable(values4) {
		cand := sameValueDescriptor(4)
		if cand.CompSize < best.CompSize {
			best = cand
		}
	} else {
		for _, delta := range [...]int{1, 2} {
			compSize, baseCount := multBase(values4, delta, 4, 2)
			if compSize < best.CompSize {
				best = CompressionDescriptor{CompSize: compSize, K: 4, BaseNum: baseCount}
			}
		}
	}

	values2 := granules(line[:], 2)
	if isSameValuePackable(values2) {
		return sameValueDescriptor(2)
	}
	compSize, baseCount := multBase(values2, 1, 2, 2)
	if compSize < best.CompSize {
		best = CompressionDescriptor{CompSize: compSize, K: 2, BaseNum: baseCount}
	}

	return best
}

// QuickCheck mirrors the early zero/same-value-only fast path: it reports
// whether line is all-zero or uniformly one 8-byte value without running
// the full candidate sweep. The second return value is false when neither
// shortcut applies, in which case the descriptor is the zero value and the
// caller should fall back to Compress.
func QuickCheck(line [LineSize]byte) (CompressionDescriptor, bool) {
	values8 := granules(line[:], 8)
	if isZeroPackable(values8) {
		return zeroDescriptor(), true
	}
	if isSameValuePackable(values8) {
		return sameValueDescriptor(8), true
	}
	return CompressionDescriptor{}, false
}

// granules reinterprets buf as big-endian unsigned integers of the given
// granule width. Panics if buf's length (always LineSize here) is not a
// multiple of width -- both are caller-controlled constants.
func granules(buf []byte, width int) []uint64 {
	values, err := ReadAsInts(buf, width, DefaultEndian)
	if err != nil {
		panic(err)
	}
	return values
}

func isZeroPackable(values []uint64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

func isSameValuePackable(values []uint64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// multBase implements the BDI "base+delta" admission rule: a new base is
// appended whenever *any* existing base is out of range for the current
// value (not only when all are), preserved byte-for-byte from the
// reference implementation. basesMax caps the
// number of bases considered (2 for every candidate in this codec).
//
// Returns (compSize, baseCount). If any value is uncovered by the admitted
// bases, compSize is n*K (the uncompressed size for this granule), signaling
// the candidate did not improve on raw storage.
func multBase(values []uint64, deltaWidth, k, basesMax int) (compSize int, baseCount int) {
	m := mask(deltaWidth)
	n := len(values)

	bases := make([]uint64, 1, basesMax+4)
	for i := 0; i < n; i++ {
		for j := 0; j < len(bases); j++ {
			if absDiff(bases[j], values[i]) > m {
				bases = append(bases, values[i])
			}
		}
		if len(bases) >= basesMax {
			break
		}
	}
	baseCount = len(bases)

	compCount, compBase1Count, compBase2Count := 0, 0, 0
	for i := 0; i < n; i++ {
		for j := 0; j < len(bases); j++ {
			if absDiff(bases[j], values[i]) <= m {
				compCount++
				switch j {
				case 0:
					compBase1Count++
				case 1:
					compBase2Count++
				}
				break
			}
		}
	}

	if compCount < n {
		return n * k, baseCount
	}
	return baseCount*k + compBase1Count*deltaWidth + compBase2Count*2*deltaWidth, baseCount
}
