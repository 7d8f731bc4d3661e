// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/woozymasta/lzw"
)

// runStats is the CLI's --stats summary: the supplemented replacement for
// the original driver's stats.json, built from lzw.Observer events rather
// than per-step unbounded arrays (spec.md §9's "optional observation
// points" guidance).
type runStats struct {
	InputBytes      int     `json:"input_bytes"`
	CodesEmitted    int     `json:"codes_emitted"`
	DictionaryGrows int     `json:"dictionary_entries_inserted"`
	WidthChanges    []int   `json:"width_changes"`
	OutputBytes     int     `json:"output_bytes"`
	CompressionRate float64 `json:"compression_ratio"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`

	start time.Time
}

func newRunStats(inputBytes int) *runStats {
	return &runStats{InputBytes: inputBytes, start: time.Now()}
}

// encodeObserver wires runStats into Encode's hot path.
func (s *runStats) encodeObserver() *lzw.Observer {
	return &lzw.Observer{
		OnEmit:   func(uint32) { s.CodesEmitted++ },
		OnInsert: func(uint32) { s.DictionaryGrows++ },
		OnWidthChange: func(bits int) {
			s.WidthChanges = append(s.WidthChanges, bits)
		},
	}
}

// finish fills in the fields that can only be known once compression has
// run to completion and the output file has been written.
func (s *runStats) finish(inputBytes int, outputPath string) {
	s.ElapsedSeconds = time.Since(s.start).Seconds()
	if info, err := os.Stat(outputPath); err == nil {
		s.OutputBytes = int(info.Size())
	}
	if s.OutputBytes > 0 {
		s.CompressionRate = float64(inputBytes) / float64(s.OutputBytes)
	}
}

func writeStatsFile(path string, s *runStats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
