// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

// Command bdisim is the interactive trace-driven compressed-cache
// simulator: it prompts for a trace filename and a replacement policy,
// then runs the trace to completion and prints a summary, mirroring the
// reference's main.c CLI exactly while the plumbing underneath (config,
// logging, telemetry) is production-shaped.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/patricklfdm/bdisim/cache"
	"github.com/patricklfdm/bdisim/config"
	"github.com/patricklfdm/bdisim/simlog"
	"github.com/patricklfdm/bdisim/telemetry"
	"github.com/patricklfdm/bdisim/trace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := simlog.New(cfg.LogLevel)

	stdin := bufio.NewReader(os.Stdin)

	fmt.Print("Enter the trace file name: ")
	traceName, err := stdin.ReadString('\n')
	if err != nil {
		return fmt.Errorf("bdisim: reading input: %w", err)
	}
	traceName = strings.TrimSpace(traceName)

	policy, policyName := choosePolicy(stdin, cfg.RandSeed)

	seedPaths := [trace.SeedCount]string{
		filepath.Join(cfg.SeedDir, "hex1.txt"),
		filepath.Join(cfg.SeedDir, "hex2.txt"),
		filepath.Join(cfg.SeedDir, "hex3.txt"),
		filepath.Join(cfg.SeedDir, "hex4.txt"),
		filepath.Join(cfg.SeedDir, "hex5.txt"),
	}
	seeds, err := trace.LoadSeeds(seedPaths, cfg.SeedCodec())
	if err != nil {
		log.Error("failed to load seed files", err)
		return err
	}

	tracePath := filepath.Join(cfg.TraceDir, traceName)
	raw, err := os.ReadFile(tracePath)
	if err != nil {
		log.Error("failed to open trace file", err)
		return err
	}
	meta := trace.NewRunMetadata(raw)

	log.With("run_id", meta.RunID.String()).
		With("trace_sha256", meta.TraceSHA256).
		With("seed_codec", cfg.SeedCodec().Name()).
		Info("starting run")

	outPath := telemetry.OutputPath(cfg.OutputDir, traceName, policyName)
	rec, err := telemetry.NewRecorder(outPath, meta.ProvenanceComment())
	if err != nil {
		log.Error("failed to open output CSV", err)
		return err
	}
	defer rec.Close()

	c := cache.NewCache()
	rng := rand.New(rand.NewSource(cfg.RandSeed))
	driver := trace.NewDriver(c, policy, seeds, rec, log, rng)

	start := time.Now()
	stats, err := driver.Run(context.Background(), bytes.NewReader(raw))
	elapsed := time.Since(start)
	if err != nil {
		log.Error("trace processing failed", err)
		return err
	}

	log.Info("run complete")

	printSummary(traceName, stats, elapsed)
	return nil
}

// choosePolicy mirrors chooseReplacementPolicy's 1-4 menu; an invalid
// choice defaults to LRU, matching the reference.
func choosePolicy(stdin *bufio.Reader, seed int64) (cache.Policy, string) {
	fmt.Println()
	fmt.Println("Select a replacement policy:")
	fmt.Println("1. RANDOM")
	fmt.Println("2. BESTFIT")
	fmt.Println("3. LRU")
	fmt.Println("4. CAMP")
	fmt.Print("Enter your choice (1-4): ")

	line, _ := stdin.ReadString('\n')
	choice, _ := strconv.Atoi(strings.TrimSpace(line))

	switch choice {
	case 1:
		fmt.Println("Using replacement policy: RANDOM")
		return cache.NewRandomPolicy(rand.New(rand.NewSource(seed))), "random"
	case 2:
		fmt.Println("Using replacement policy: BESTFIT")
		return cache.BestFitPolicy{}, "bestfit"
	case 3:
		fmt.Println("Using replacement policy: LRU")
		return cache.LRUPolicy{}, "lru"
	case 4:
		fmt.Println("Using replacement policy: CAMP")
		return cache.CAMPPolicy{}, "camp"
	default:
		fmt.Println("Invalid choice, defaulting to LRU.")
		return cache.LRUPolicy{}, "lru"
	}
}

func printSummary(filename string, s trace.Stats, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("==========================================================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Instructions: %d\n", s.InstructionCount)
	fmt.Printf("        Load: %d\n", s.LoadCount)
	fmt.Printf("       Store: %d\n", s.StoreCount)
	fmt.Println("----------------------------------------------------------")
	fmt.Printf(" LoadHitRate: %f\n", s.LoadHitRate())
	fmt.Printf("StoreHitRate: %f\n", s.StoreHitRate())
	fmt.Printf("TotalHitRate: %f\n", s.HitRate())
	fmt.Println("==========================================================")
	fmt.Printf("Execution time: %f seconds\n", elapsed.Seconds())
}
