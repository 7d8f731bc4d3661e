// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRunStats_EncodeObserverPopulatesCounts(t *testing.T) {
	s := newRunStats(24)
	obs := s.encodeObserver()

	obs.OnEmit(65)
	obs.OnEmit(66)
	obs.OnInsert(256)
	obs.OnWidthChange(10)
	obs.OnEmit(256)

	want := &runStats{
		InputBytes:      24,
		CodesEmitted:    3,
		DictionaryGrows: 1,
		WidthChanges:    []int{10},
	}

	if diff := cmp.Diff(want, s, cmpopts.IgnoreFields(runStats{}, "OutputBytes", "CompressionRate", "ElapsedSeconds"), cmpopts.IgnoreUnexported(runStats{})); diff != "" {
		t.Fatalf("runStats mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStats_RoundTripsThroughJSON(t *testing.T) {
	s := newRunStats(100)
	s.CodesEmitted = 42
	s.DictionaryGrows = 7
	s.WidthChanges = []int{10, 11}
	s.OutputBytes = 80
	s.CompressionRate = 1.25

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded runStats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := runStats{
		InputBytes:      100,
		CodesEmitted:    42,
		DictionaryGrows: 7,
		WidthChanges:    []int{10, 11},
		OutputBytes:     80,
		CompressionRate: 1.25,
	}
	if diff := cmp.Diff(want, decoded, cmpopts.IgnoreUnexported(runStats{})); diff != "" {
		t.Fatalf("runStats JSON round trip mismatch (-want +got):\n%s", diff)
	}
}
