package types

import (
	"sort"
	"time"
)

// FileCandidate represents a file that passed the directory filters and is
// queued for content scanning. It carries only metadata; content is loaded
// later by the file pipeline.
type FileCandidate struct {
	Path string // Path to the file
	Size int64  // Size in bytes as reported by the filesystem
	Ext  string // Lowercased extension including the leading dot, or ""
}

// SecretMatch represents a single confirmed detection that survived every
// filter stage.
type SecretMatch struct {
	Path        string `json:"path"`         // File the secret was found in
	Line        int    `json:"line"`         // 1-based line number of the match start
	StartColumn int    `json:"start_column"` // 1-based rune column of the match start
	EndColumn   int    `json:"end_column"`   // 1-based rune column one past the match end, clamped to the start line
	Secret      string `json:"secret"`       // The matched text
	LineText    string `json:"line_text"`    // Full text of the line containing the match start
	PatternName string `json:"pattern_name"` // Human-readable name of the matching pattern
	Severity    string `json:"severity"`     // "critical", "high", "medium", "low"
}

// ScanStats contains counters accumulated during a scan. Each worker
// accumulates into its own instance; the orchestrator sums them with Add.
type ScanStats struct {
	FilesDiscovered       int           `json:"files_discovered"`         // Regular files seen by the walker
	FilesFilteredByPath   int           `json:"files_filtered_by_path"`   // Excluded by ignore globs or gitignore rules
	FilesFilteredBySize   int           `json:"files_filtered_by_size"`   // Excluded by the size ceiling
	FilesFilteredByBinary int           `json:"files_filtered_by_binary"` // Excluded as binary content
	FilesProcessed        int           `json:"files_processed"`          // Files whose content was scanned
	FilesErrored          int           `json:"files_errored"`            // Files skipped due to read/encoding errors
	PotentialMatches      int           `json:"potential_matches"`        // Raw regex matches before content filters
	FilteredByComment     int           `json:"filtered_by_comment"`      // Matches dropped by suppression directives
	FilteredByEntropy     int           `json:"filtered_by_entropy"`      // Matches dropped by the entropy gate
	MatchesFound          int           `json:"matches_found"`            // Matches that survived all filters
	Duration              time.Duration `json:"duration_ns"`              // Wall-clock duration of the whole scan
}

// Add accumulates the counters from other into s. Duration is not summed;
// the orchestrator sets it once from wall-clock time.
func (s *ScanStats) Add(other ScanStats) {
	s.FilesDiscovered += other.FilesDiscovered
	s.FilesFilteredByPath += other.FilesFilteredByPath
	s.FilesFilteredBySize += other.FilesFilteredBySize
	s.FilesFilteredByBinary += other.FilesFilteredByBinary
	s.FilesProcessed += other.FilesProcessed
	s.FilesErrored += other.FilesErrored
	s.PotentialMatches += other.PotentialMatches
	s.FilteredByComment += other.FilteredByComment
	s.FilteredByEntropy += other.FilteredByEntropy
	s.MatchesFound += other.MatchesFound
}

// ScanResult is the terminal output of a scan: every surviving match plus the
// summed statistics and any non-fatal configuration warnings.
type ScanResult struct {
	Matches  []SecretMatch `json:"matches"`
	Stats    ScanStats     `json:"stats"`
	Warnings []string      `json:"warnings,omitempty"`
}

// HasMatches reports whether the scan found any secrets.
func (r *ScanResult) HasMatches() bool {
	return len(r.Matches) > 0
}

// SortByPath orders matches by file path, then line, then column. Match order
// across files is not deterministic under parallel execution, so renderers
// call this to get stable output.
func (r *ScanResult) SortByPath() {
	sort.Slice(r.Matches, func(i, j int) bool {
		a, b := r.Matches[i], r.Matches[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.StartColumn != b.StartColumn {
			return a.StartColumn < b.StartColumn
		}
		return a.PatternName < b.PatternName
	})
}
