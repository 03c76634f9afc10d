package types

import (
	"testing"
	"time"
)

func TestScanStatsAdd(t *testing.T) {
	total := ScanStats{FilesDiscovered: 5, MatchesFound: 1, Duration: time.Second}
	total.Add(ScanStats{
		FilesDiscovered:   3,
		FilesProcessed:    2,
		PotentialMatches:  4,
		FilteredByEntropy: 1,
		MatchesFound:      2,
		Duration:          time.Minute,
	})

	if total.FilesDiscovered != 8 {
		t.Errorf("FilesDiscovered = %d, want 8", total.FilesDiscovered)
	}
	if total.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", total.FilesProcessed)
	}
	if total.MatchesFound != 3 {
		t.Errorf("MatchesFound = %d, want 3", total.MatchesFound)
	}
	if total.Duration != time.Second {
		t.Errorf("Duration = %v; worker durations must not be summed", total.Duration)
	}
}

func TestSortByPath(t *testing.T) {
	result := ScanResult{Matches: []SecretMatch{
		{Path: "b.txt", Line: 1, StartColumn: 1, PatternName: "P"},
		{Path: "a.txt", Line: 5, StartColumn: 1, PatternName: "P"},
		{Path: "a.txt", Line: 2, StartColumn: 9, PatternName: "P"},
		{Path: "a.txt", Line: 2, StartColumn: 3, PatternName: "Q"},
		{Path: "a.txt", Line: 2, StartColumn: 3, PatternName: "P"},
	}}

	result.SortByPath()

	want := []SecretMatch{
		{Path: "a.txt", Line: 2, StartColumn: 3, PatternName: "P"},
		{Path: "a.txt", Line: 2, StartColumn: 3, PatternName: "Q"},
		{Path: "a.txt", Line: 2, StartColumn: 9, PatternName: "P"},
		{Path: "a.txt", Line: 5, StartColumn: 1, PatternName: "P"},
		{Path: "b.txt", Line: 1, StartColumn: 1, PatternName: "P"},
	}
	for i, m := range result.Matches {
		if m != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestHasMatches(t *testing.T) {
	var empty ScanResult
	if empty.HasMatches() {
		t.Error("empty result should have no matches")
	}

	found := ScanResult{Matches: []SecretMatch{{Path: "a"}}}
	if !found.HasMatches() {
		t.Error("result with a match should report HasMatches")
	}
}
