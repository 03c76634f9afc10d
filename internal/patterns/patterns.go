package patterns

import (
	"fmt"
	"regexp"

	"github.com/deepbrainspace/guardy/internal/config"
)

// Severity levels for detection patterns
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Pattern is one named detection rule. Immutable after construction and
// shared read-only by every worker for the lifetime of a scan.
type Pattern struct {
	Name     string         // Human-readable display name
	Severity string         // One of the Severity constants
	Regex    *regexp.Regexp // Compiled expression, run over whole-file content
	Keywords []string       // Lowercased prefilter literals; nil when AlwaysActive

	// AlwaysActive marks patterns whose regex has no usable literal
	// substring; they bypass prefiltering and run on every file.
	AlwaysActive bool

	// SkipEntropy marks patterns whose structure alone is proof enough;
	// their matches bypass the entropy gate.
	SkipEntropy bool

	// SecretGroup is the capture group holding the candidate secret for
	// entropy scoring. Zero means the whole match is the secret.
	SecretGroup int
}

// Library is an ordered, immutable collection of Patterns plus the reverse
// keyword index used by the prefilter. Built once at startup and shared by
// reference across workers.
type Library struct {
	patterns     []Pattern
	keywordIndex map[string][]int
	alwaysActive []int
	keywords     []string
}

// Load builds the pattern library by merging the embedded defaults with
// user-supplied custom patterns. Custom patterns with invalid regex syntax
// are skipped with a warning, never a fatal error.
func Load(custom []config.CustomPattern) (*Library, []string) {
	lib := &Library{
		keywordIndex: make(map[string][]int),
	}
	var warnings []string

	for _, spec := range defaultPatterns {
		keywords := spec.keywords
		if keywords == nil {
			keywords = extractKeywords(spec.expr)
		}
		// Embedded defaults are maintained with the code; a compile
		// failure here is a programmer error.
		lib.add(Pattern{
			Name:        spec.name,
			Severity:    spec.severity,
			Regex:       regexp.MustCompile(spec.expr),
			Keywords:    keywords,
			SkipEntropy: spec.skipEntropy,
			SecretGroup: spec.secretGroup,
		})
	}

	for _, cp := range custom {
		re, err := regexp.Compile(cp.Regex)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping custom pattern %q: invalid regex: %v", cp.Name, err))
			continue
		}
		severity := cp.Severity
		if !validSeverity(severity) {
			severity = SeverityMedium
		}
		lib.add(Pattern{
			Name:        cp.Name,
			Severity:    severity,
			Regex:       re,
			Keywords:    extractKeywords(cp.Regex),
			SecretGroup: re.NumSubexp(),
		})
	}

	return lib, warnings
}

// add indexes a pattern. A pattern without keywords is always active.
func (l *Library) add(p Pattern) {
	idx := len(l.patterns)
	if len(p.Keywords) == 0 {
		p.AlwaysActive = true
		l.alwaysActive = append(l.alwaysActive, idx)
	} else {
		for _, kw := range p.Keywords {
			if _, seen := l.keywordIndex[kw]; !seen {
				l.keywords = append(l.keywords, kw)
			}
			l.keywordIndex[kw] = append(l.keywordIndex[kw], idx)
		}
	}
	l.patterns = append(l.patterns, p)
}

// Len returns the number of patterns in the library.
func (l *Library) Len() int {
	return len(l.patterns)
}

// Pattern returns the pattern at index i. O(1); used in the per-file hot
// loop.
func (l *Library) Pattern(i int) *Pattern {
	return &l.patterns[i]
}

// Keywords returns every distinct keyword across all patterns, used once at
// startup to build the prefilter automaton.
func (l *Library) Keywords() []string {
	return l.keywords
}

// PatternsForKeyword returns the indices of patterns that list kw as a
// prefilter keyword.
func (l *Library) PatternsForKeyword(kw string) []int {
	return l.keywordIndex[kw]
}

// AlwaysActive returns the indices of patterns that bypass prefiltering.
func (l *Library) AlwaysActive() []int {
	return l.alwaysActive
}

func validSeverity(s string) bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}
