// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

// FPCCompress implements Frequent Pattern Compression, the alternative
// codec kept as an out-of-scope collaborator: it classifies
// each 4-byte word of a 32-byte line into one of the classic FPC patterns
// (zero, narrow sign-extended, zero-extended halfword, two narrow
// halfwords, repeated byte, or uncompressible) and adds a fixed 3-bit
// control overhead per word.
func FPCCompress(line [LineSize]byte) int {
	words := granules(line[:], 4)
	n := len(words)

	compressable := 0
	for _, w := range words {
		word := int32(uint32(w))

		switch {
		case word == 0:
			compressable++
		case fpcAbs(word) <= 0xFF:
			compressable++
		case fpcAbs(word) <= 0xFFFF:
			compressable += 2
		case uint32(word)&0xFFFF == 0:
			compressable += 2
		case uint32(word)&0xFFFF <= 0xFF && (uint32(word)>>16)&0xFFFF <= 0xFF:
			// Note: the reference casts each zero-extended halfword to a
			// (non-negative) signed word before taking its magnitude, so
			// this is a plain unsigned comparison, not a sign-extended one.
			compressable += 2
		case isRepeatedByte(uint32(word)):
			compressable++
		default:
			compressable += 4
		}
	}

	compSize := compressable + n*3/8
	if compSize < n*4 {
		return compSize
	}
	return n * 4
}

func fpcAbs(x int32) uint32 {
	if x < 0 {
		return uint32(-int64(x))
	}
	return uint32(x)
}

func isRepeatedByte(word uint32) bool {
	b0 := byte(word)
	b1 := byte(word >> 8)
	b2 := byte(word >> 16)
	b3 := byte(word >> 24)
	return b0 == b1 && b0 == b2 && b0 == b3
}
