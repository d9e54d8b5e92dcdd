// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package bdi

// Codec is a cache-line compressor selectable per run. It lets a caller
// (trace.LoadSeeds) choose between BDI and FPC the way the reference's
// GeneralCompress dispatcher compared them, without resurrecting that
// function's global compress-mode switch.
type Codec interface {
	// Name identifies the codec for logging/telemetry provenance.
	Name() string
	// Compress reduces one LineSize-byte payload to a CompressionDescriptor.
	Compress(line [LineSize]byte) CompressionDescriptor
}

// BDICodec runs the full BDI candidate search (Compress). When Cheap is
// set, it tries the zero/same-value-only fast path (QuickCheck) first and
// only falls back to the full candidate sweep when neither shortcut
// applies -- the common all-zero memset pattern seen in real traces never
// needs the full sweep.
type BDICodec struct {
	Cheap bool
}

func (c BDICodec) Name() string { return "bdi" }

func (c BDICodec) Compress(line [LineSize]byte) CompressionDescriptor {
	if c.Cheap {
		if desc, ok := QuickCheck(line); ok {
			return desc
		}
	}
	return Compress(line)
}

// FPCCodec runs Frequent Pattern Compression instead of BDI. Its scalar
// result is folded into a CompressionDescriptor so it can back a cache
// line exactly like a BDI result; FPC has no base+delta structure, so
// IsZero, IsSame, and BaseNum stay at their zero values and K is fixed at
// 4, FPC's per-word granule.
type FPCCodec struct{}

func (FPCCodec) Name() string { return "fpc" }

func (FPCCodec) Compress(line [LineSize]byte) CompressionDescriptor {
	return CompressionDescriptor{CompSize: FPCCompress(line), K: 4}
}
