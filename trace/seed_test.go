// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

package trace

import (
	"testing"

	"github.com/patricklfdm/bdisim/bdi"
)

func TestLoadSeeds_AllFiveFilesParse(t *testing.T) {
	paths := [SeedCount]string{
		"../testdata/testHex/hex1.txt",
		"../testdata/testHex/hex2.txt",
		"../testdata/testHex/hex3.txt",
		"../testdata/testHex/hex4.txt",
		"../testdata/testHex/hex5.txt",
	}
	samples, err := LoadSeeds(paths, bdi.BDICodec{})
	if err != nil {
		t.Fatalf("LoadSeeds failed: %v", err)
	}
	for i, s := range samples {
		if s.CompSize <= 0 {
			t.Fatalf("sample %d: CompSize=%d, want > 0", i, s.CompSize)
		}
	}
	// hex1.txt is all zeroes: the cheapest possible BDI encoding.
	if samples[0].CompSize > samples[3].CompSize {
		t.Fatalf("all-zero seed (CompSize=%d) should compress at least as well as the scattered seed (CompSize=%d)",
			samples[0].CompSize, samples[3].CompSize)
	}
}

func TestLoadSeeds_FPCCodecProducesDifferentSamples(t *testing.T) {
	paths := [SeedCount]string{
		"../testdata/testHex/hex1.txt",
		"../testdata/testHex/hex2.txt",
		"../testdata/testHex/hex3.txt",
		"../testdata/testHex/hex4.txt",
		"../testdata/testHex/hex5.txt",
	}
	bdiSamples, err := LoadSeeds(paths, bdi.BDICodec{})
	if err != nil {
		t.Fatalf("LoadSeeds(bdi) failed: %v", err)
	}
	fpcSamples, err := LoadSeeds(paths, bdi.FPCCodec{})
	if err != nil {
		t.Fatalf("LoadSeeds(fpc) failed: %v", err)
	}
	for i := range fpcSamples {
		if fpcSamples[i].K != 4 {
			t.Fatalf("fpc sample %d: K=%d, want 4", i, fpcSamples[i].K)
		}
	}
	// hex4.txt is a scattered, incompressible-by-BDI pattern; BDI and FPC
	// should disagree on its cost.
	if bdiSamples[3].CompSize == fpcSamples[3].CompSize {
		t.Fatalf("expected BDI and FPC to disagree on hex4.txt's cost, both got %d", bdiSamples[3].CompSize)
	}
}

func TestLoadSeeds_MissingFileReturnsIOError(t *testing.T) {
	paths := [SeedCount]string{
		"../testdata/testHex/hex1.txt",
		"../testdata/testHex/hex2.txt",
		"../testdata/testHex/hex3.txt",
		"../testdata/testHex/hex4.txt",
		"../testdata/testHex/does-not-exist.txt",
	}
	_, err := LoadSeeds(paths, bdi.BDICodec{})
	if err == nil {
		t.Fatal("expected an error for a missing seed file")
	}
	te, ok := err.(TraceError)
	if !ok {
		t.Fatalf("error %v does not implement TraceError", err)
	}
	if te.Kind() != KindIO {
		t.Fatalf("Kind() = %v, want KindIO", te.Kind())
	}
}
