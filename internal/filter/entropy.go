package filter

import (
	"github.com/deepbrainspace/guardy/internal/entropy"
)

// EntropyFilter wraps the entropy analyzer as a per-match accept/reject
// gate. It runs last in the content pipeline: statistical scoring is the
// most expensive check, so cheaper filters prune candidates first.
type EntropyFilter struct {
	analyzer *entropy.Analyzer
}

// NewEntropyFilter creates an entropy gate with the given acceptance
// threshold.
func NewEntropyFilter(threshold float64) *EntropyFilter {
	return &EntropyFilter{analyzer: entropy.NewAnalyzer(threshold)}
}

// Keep reports whether a match with the given candidate secret should be
// kept. Patterns whose structure is unambiguous set skipEntropy and bypass
// the gate entirely.
func (f *EntropyFilter) Keep(secret string, skipEntropy bool) bool {
	if skipEntropy {
		return true
	}
	return f.analyzer.IsRandom(secret)
}
