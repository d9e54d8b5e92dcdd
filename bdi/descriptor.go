// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

// LineSize is the fixed cache-line payload size BDI compresses, in bytes.
const LineSize = 32

// CompressionDescriptor is the outcome of running BDI (or FPC) on one
// LineSize-byte payload.
type CompressionDescriptor struct {
	IsZero   bool // whole line is zero
	IsSame   bool // all granules equal
	CompSize int  // raw compressed byte length, minimum 1
	K        int  // granule size chosen: 2, 4, or 8 (1 for the zero-line case, 0 when no candidate compresses)
	BaseNum  int  // number of bases used: 0 for zero or uncompressed, 1 for same-value, 1-2 for base+delta
}

func zeroDescriptor() CompressionDescriptor {
	return CompressionDescriptor{IsZero: true, IsSame: true, CompSize: 1, K: 1, BaseNum: 0}
}

func sameValueDescriptor(k int) CompressionDescriptor {
	return CompressionDescriptor{IsSame: true, CompSize: k, K: k, BaseNum: 1}
}

// mask returns the signed-delta magnitude mask for a delta byte-width of 1, 2, or 4.
func mask(deltaWidth int) uint64 {
	switch deltaWidth {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	case 4:
		return 0xFFFFFFFF
	default:
		panic("bdi: invalid delta width")
	}
}
