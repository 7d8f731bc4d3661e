// SPDX-License-Identifier: GPL-2.0-only

// Command lzwtool compresses and decompresses a file with LZW, writing a
// decompressed copy alongside the input for validation - the same
// round-trip-on-every-run behavior as the original reference driver
// (original_source/LZW ALGORITMO/LZW.py main()).
//
// Usage:
//
//	lzwtool <input> <output>
//	lzwtool <input> <output> <initial_bits> <max_bits>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/woozymasta/lzw"
)

const usage = "usage: lzwtool <input> <output> [<initial_bits> <max_bits>] [flags]"

type cliOptions struct {
	framing     lzw.Framing
	stats       bool
	initialBits int
	maxBits     int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut *os.File) int {
	flagSet := flag.NewFlagSet("lzwtool", flag.ContinueOnError)
	flagSet.SetOutput(errOut)

	framingFlag := flagSet.String("framing", "packed", "stream framing: \"packed\" (variable width, F2) or \"bits\" (fixed width, F1)")
	statsFlag := flagSet.Bool("stats", false, "write a <output>.stats.json summary after compressing")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, usage)
		return 2
	}

	positional := flagSet.Args()
	if len(positional) != 2 && len(positional) != 4 {
		fmt.Fprintln(errOut, usage)
		return 2
	}

	opts, err := parsePositional(positional)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	switch *framingFlag {
	case "packed":
		opts.framing = lzw.FramingBitPacked
	case "bits":
		opts.framing = lzw.FramingFixedWidth
	default:
		fmt.Fprintf(errOut, "error: unknown --framing %q (want \"packed\" or \"bits\")\n", *framingFlag)
		return 2
	}
	opts.stats = *statsFlag

	inputPath := positional[0]
	outputPath := positional[1]

	return compressAndValidate(out, errOut, inputPath, outputPath, opts)
}

func parsePositional(positional []string) (cliOptions, error) {
	opts := cliOptions{initialBits: 12, maxBits: 12}
	if len(positional) < 4 {
		return opts, nil
	}

	initialBits, err := strconv.Atoi(positional[2])
	if err != nil {
		return opts, fmt.Errorf("invalid initial_bits %q: %w", positional[2], err)
	}
	maxBits, err := strconv.Atoi(positional[3])
	if err != nil {
		return opts, fmt.Errorf("invalid max_bits %q: %w", positional[3], err)
	}

	opts.initialBits = initialBits
	opts.maxBits = maxBits
	return opts, nil
}

func compressAndValidate(out, errOut *os.File, inputPath, outputPath string, opts cliOptions) int {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	encodeOpts := lzw.EncodeOptions{InitialBits: opts.initialBits, MaxBits: opts.maxBits}

	var summary *runStats
	if opts.stats {
		summary = newRunStats(len(src))
		encodeOpts.Observer = summary.encodeObserver()
	}

	if err := writeStreamFile(outputPath, src, encodeOpts, opts.framing); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	decompressed, err := readBack(outputPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	decompressedPath := decompressedSiblingPath(inputPath)
	if err := writeFileAtomic(decompressedPath, decompressed); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if len(decompressed) != len(src) || !bytesEqual(decompressed, src) {
		fmt.Fprintln(errOut, "error: round-trip mismatch between input and decompressed output")
		return 1
	}

	if summary != nil {
		summary.finish(len(src), outputPath)
		if err := writeStatsFile(outputPath+".stats.json", summary); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
	}

	fmt.Fprintf(out, "compressed %s -> %s (%d -> %d bytes), validated against %s\n",
		inputPath, outputPath, len(src), compressedSize(outputPath), decompressedPath)

	return 0
}

func decompressedSiblingPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return filepath.Join(filepath.Dir(inputPath), "decompressed"+ext)
}

func compressedSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
