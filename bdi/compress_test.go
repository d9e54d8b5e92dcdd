// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

import (
	"encoding/binary"
	"testing"
)

func lineOfWords(words ...uint32) [LineSize]byte {
	var line [LineSize]byte
	for i, w := range words {
		binary.BigEndian.PutUint32(line[i*4:i*4+4], w)
	}
	return line
}

func TestCompress_AllZero(t *testing.T) {
	var line [LineSize]byte
	got := Compress(line)
	want := CompressionDescriptor{IsZero: true, IsSame: true, CompSize: 1, K: 1, BaseNum: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCompress_SameEightByteValue(t *testing.T) {
	line := lineOfWords(
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
	)
	got := Compress(line)
	want := CompressionDescriptor{IsSame: true, CompSize: 8, K: 8, BaseNum: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCompress_BaseDeltaK8Delta1(t *testing.T) {
	line := lineOfWords(
		0x00000000, 0x00000100,
		0x00000000, 0x00000101,
		0x00000000, 0x00000102,
		0x00000000, 0x00000103,
	)
	got := Compress(line)
	if got.IsZero || got.IsSame {
		t.Fatalf("expected a base+delta encoding, got %+v", got)
	}
	if got.K != 8 {
		t.Fatalf("expected K=8, got %+v", got)
	}
	if got.CompSize >= LineSize {
		t.Fatalf("expected compression, got CompSize=%d", got.CompSize)
	}
}

func TestCompress_NeverExceedsLineSize(t *testing.T) {
	line := lineOfWords(
		0x00000000, 0xFFFFFFFF, 0x12345678, 0x89ABCDEF,
		0x55555555, 0xAAAAAAAA, 0x11111111, 0xEEEEEEEE,
	)
	got := Compress(line)
	if got.CompSize > LineSize {
		t.Fatalf("CompSize=%d exceeds LineSize=%d", got.CompSize, LineSize)
	}
}

func TestCompress_UncompressibleLineReportsRawSizeNoGranule(t *testing.T) {
	// No candidate covers this scatter, so the descriptor falls back to the
	// raw size with K and BaseNum left at zero.
	line := lineOfWords(
		0x00000000, 0xFFFFFFFF, 0x12345678, 0x89ABCDEF,
		0x55555555, 0xAAAAAAAA, 0x11111111, 0xEEEEEEEE,
	)
	got := Compress(line)
	want := CompressionDescriptor{CompSize: LineSize}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestQuickCheck_MatchesCompressForZeroAndSame(t *testing.T) {
	var zero [LineSize]byte
	if got, ok := QuickCheck(zero); !ok || got != Compress(zero) {
		t.Fatalf("QuickCheck zero mismatch: got=%+v ok=%v", got, ok)
	}

	same := lineOfWords(
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
		0x00000000, 0xAABBCCDD,
	)
	if got, ok := QuickCheck(same); !ok || got != Compress(same) {
		t.Fatalf("QuickCheck same-value mismatch: got=%+v ok=%v", got, ok)
	}
}

func TestQuickCheck_FalseWhenNeitherShortcutApplies(t *testing.T) {
	line := lineOfWords(
		0x00000000, 0x00000100,
		0x00000000, 0x00000101,
		0x00000000, 0x00000102,
		0x00000000, 0x00000103,
	)
	if _, ok := QuickCheck(line); ok {
		t.Fatalf("expected QuickCheck to decline a non-zero, non-uniform line")
	}
}
