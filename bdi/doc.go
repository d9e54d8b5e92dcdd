// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

/*
Package bdi implements Base-Delta-Immediate cache-line compression.

BDI classifies a fixed-size cache line into one of a handful of compressed
encodings: an all-zero line, a line of one repeated value, or a line
expressible as 1-2 "base" values plus small per-element deltas over 2, 4,
or 8-byte granules. Compress evaluates every candidate encoding and returns
the smallest.

	desc := bdi.Compress(line)
	fmt.Println(desc.CompSize, desc.K, desc.BaseNum)

FPCCompress implements the alternative Frequent Pattern Compression
estimator, used as a secondary codec for comparison rather than as the
engine's primary compressor. Codec wraps Compress and FPCCompress behind
a common interface (BDICodec, FPCCodec) so callers can select between
them without depending on either concrete compressor:

	var codec bdi.Codec = bdi.BDICodec{}
	desc := codec.Compress(line)
*/
package bdi
