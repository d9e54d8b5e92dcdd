// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

// Package config loads the simulator's environment-driven settings: the
// three directory roots the CLI's interactive prompts resolve against,
// the log level, and a deterministic RNG seed for tests.
package config

import (
	"time"

	"github.com/xyproto/env/v2"

	"github.com/patricklfdm/bdisim/bdi"
)

// Config holds every setting the CLI needs beyond its two interactive
// prompts (trace filename, policy choice).
type Config struct {
	// TraceDir is where trace filenames typed at the prompt are resolved.
	TraceDir string
	// SeedDir holds the five hex seed files hex1.txt..hex5.txt.
	SeedDir string
	// OutputDir is the CSV destination root.
	OutputDir string
	// LogLevel is the simlog level name ("debug", "info", "warn", "error").
	LogLevel string
	// RandSeed seeds the process-wide RNG used by the RANDOM policy; the
	// CLI defaults this to the current time, tests override it for
	// determinism across runs.
	RandSeed int64
	// Codec selects which compressor backs the seed samples: "bdi" (the
	// full BDI candidate search) or "fpc" (Frequent Pattern Compression,
	// the alternative estimator). Anything else falls back to "bdi".
	Codec string
	// CheapPath, when Codec is "bdi", has BDICodec try the zero/same-value
	// fast path (bdi.QuickCheck) before running the full candidate sweep.
	CheapPath bool
}

// Load reads BDISIM_TRACE_DIR, BDISIM_SEED_DIR, BDISIM_OUTPUT_DIR,
// BDISIM_LOG_LEVEL, BDISIM_CODEC, and BDISIM_CHEAP_PATH, falling back to
// testTraces/, testHex/, testOutput/, info, bdi, and false respectively
// when unset.
func Load() Config {
	return Config{
		TraceDir:  env.Str("BDISIM_TRACE_DIR", "testTraces/"),
		SeedDir:   env.Str("BDISIM_SEED_DIR", "testHex/"),
		OutputDir: env.Str("BDISIM_OUTPUT_DIR", "testOutput/"),
		LogLevel:  env.Str("BDISIM_LOG_LEVEL", "info"),
		RandSeed:  time.Now().UnixNano(),
		Codec:     env.Str("BDISIM_CODEC", "bdi"),
		CheapPath: env.Bool("BDISIM_CHEAP_PATH"),
	}
}

// SeedCodec builds the bdi.Codec the seed-loading step should use,
// per Codec/CheapPath.
func (c Config) SeedCodec() bdi.Codec {
	if c.Codec == "fpc" {
		return bdi.FPCCodec{}
	}
	return bdi.BDICodec{Cheap: c.CheapPath}
}
