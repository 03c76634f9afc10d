// Package report renders a ScanResult for downstream consumers. Matches are
// rendered from the result value alone; the filesystem is never re-touched.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/deepbrainspace/guardy/pkg/types"
)

// Format names for the renderers
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders the result in the requested format.
func Write(w io.Writer, result *types.ScanResult, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText, "":
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// writeJSON emits the whole result as a single JSON document.
func writeJSON(w io.Writer, result *types.ScanResult) error {
	result.SortByPath()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode report; %w", err)
	}
	return nil
}

// writeText emits a human-readable report: warnings first, then every match
// in path order, then a stats summary that distinguishes filter skips from
// error skips so a clean scan can be told apart from one masking failures.
func writeText(w io.Writer, result *types.ScanResult) error {
	result.SortByPath()

	var sb strings.Builder

	for _, warning := range result.Warnings {
		sb.WriteString("warning: ")
		sb.WriteString(warning)
		sb.WriteString("\n")
	}
	if len(result.Warnings) > 0 {
		sb.WriteString("\n")
	}

	if len(result.Matches) == 0 {
		sb.WriteString("No secrets found.\n")
	} else {
		sb.WriteString(matchCountLine(len(result.Matches)))
		for _, m := range severityOrdered(result.Matches) {
			writeMatch(&sb, m)
		}
	}

	sb.WriteString("\n")
	writeStats(&sb, result.Stats)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report; %w", err)
	}
	return nil
}

func matchCountLine(n int) string {
	if n == 1 {
		return "Found 1 potential secret:\n\n"
	}
	return "Found " + strconv.Itoa(n) + " potential secrets:\n\n"
}

func writeMatch(sb *strings.Builder, m types.SecretMatch) {
	sb.WriteString("  [")
	sb.WriteString(strings.ToUpper(m.Severity))
	sb.WriteString("] ")
	sb.WriteString(m.PatternName)
	sb.WriteString("\n    ")
	sb.WriteString(m.Path)
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(m.Line))
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(m.StartColumn))
	sb.WriteString("\n    ")
	sb.WriteString(strings.TrimSpace(m.LineText))
	sb.WriteString("\n")
}

func writeStats(sb *strings.Builder, stats types.ScanStats) {
	sb.WriteString("Scan summary:\n")
	writeCounter(sb, "files discovered", stats.FilesDiscovered)
	writeCounter(sb, "files scanned", stats.FilesProcessed)
	writeCounter(sb, "skipped by path filter", stats.FilesFilteredByPath)
	writeCounter(sb, "skipped by size filter", stats.FilesFilteredBySize)
	writeCounter(sb, "skipped as binary", stats.FilesFilteredByBinary)
	writeCounter(sb, "skipped due to errors", stats.FilesErrored)
	writeCounter(sb, "matches suppressed by directives", stats.FilteredByComment)
	writeCounter(sb, "matches below entropy threshold", stats.FilteredByEntropy)
	writeCounter(sb, "secrets found", stats.MatchesFound)
	sb.WriteString("  duration: ")
	sb.WriteString(stats.Duration.String())
	sb.WriteString("\n")
}

func writeCounter(sb *strings.Builder, label string, value int) {
	sb.WriteString("  ")
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(strconv.Itoa(value))
	sb.WriteString("\n")
}

// severityOrdered returns the matches sorted most-severe first, preserving
// the existing path ordering within each severity.
func severityOrdered(matches []types.SecretMatch) []types.SecretMatch {
	out := make([]types.SecretMatch, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return SeverityRank(out[i].Severity) > SeverityRank(out[j].Severity)
	})
	return out
}

// SeverityRank orders severities for sorting and threshold comparison;
// higher is more severe. Unknown severities rank lowest.
func SeverityRank(severity string) int {
	switch strings.ToLower(severity) {
	case "critical":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}
