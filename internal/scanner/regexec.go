package scanner

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/deepbrainspace/guardy/internal/patterns"
)

// PotentialMatch is an intermediate record produced by the regex executor
// and consumed (or discarded) by the comment and entropy filters. It never
// leaves the file pipeline.
type PotentialMatch struct {
	Path        string
	Line        int    // 1-based line of the match start
	StartColumn int    // 1-based rune column of the match start
	EndColumn   int    // 1-based rune column one past the match end, clamped to the start line
	Text        string // The full matched substring
	Secret      string // The candidate secret (capture group or full match)
	LineText    string // Full text of the line containing the match start
	PrevLine    string // Line immediately above, "" on line 1
	PatternIdx  int    // Index into the pattern library
}

// lineIndex precomputes newline offsets for one file's content so line and
// column lookups are O(log lines) per match.
type lineIndex struct {
	content  string
	newlines []int // byte offsets of every '\n'
}

func newLineIndex(content string) *lineIndex {
	idx := &lineIndex{content: content}
	offset := 0
	for {
		i := strings.IndexByte(content[offset:], '\n')
		if i < 0 {
			break
		}
		idx.newlines = append(idx.newlines, offset+i)
		offset += i + 1
	}
	return idx
}

// lineAt returns the 1-based line number containing byte offset pos.
func (idx *lineIndex) lineAt(pos int) int {
	return sort.SearchInts(idx.newlines, pos) + 1
}

// lineBounds returns the [start, end) byte range of the given 1-based line,
// excluding the trailing newline.
func (idx *lineIndex) lineBounds(line int) (int, int) {
	start := 0
	if line > 1 {
		start = idx.newlines[line-2] + 1
	}
	end := len(idx.content)
	if line-1 < len(idx.newlines) {
		end = idx.newlines[line-1]
	}
	return start, end
}

// lineText returns the text of the given 1-based line, or "" when it is out
// of range.
func (idx *lineIndex) lineText(line int) string {
	if line < 1 || line > len(idx.newlines)+1 {
		return ""
	}
	start, end := idx.lineBounds(line)
	return idx.content[start:end]
}

// Executor runs only the active patterns' regexes over loaded file content
// and emits PotentialMatch records. No dedup is performed: a single literal
// may legitimately match two different patterns and both are preserved.
type Executor struct {
	lib *patterns.Library
}

// NewExecutor creates an executor over the shared pattern library.
func NewExecutor(lib *patterns.Library) *Executor {
	return &Executor{lib: lib}
}

// Run matches every active pattern against the whole-file content. Matching
// operates on full content rather than line-by-line, so multi-line patterns
// work; line numbers and rune-aware columns are computed per match from the
// precomputed newline index.
func (e *Executor) Run(path, content string, active []int) []PotentialMatch {
	if len(active) == 0 {
		return nil
	}

	idx := newLineIndex(content)
	var out []PotentialMatch

	for _, patternIdx := range active {
		pat := e.lib.Pattern(patternIdx)

		locs := pat.Regex.FindAllStringSubmatchIndex(content, -1)
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			line := idx.lineAt(start)
			lineStart, lineEnd := idx.lineBounds(line)

			// A multi-line match ends past the start line; clamp the end
			// column to that line so the span always names real columns.
			colEnd := end
			if colEnd > lineEnd {
				colEnd = lineEnd
			}

			secret := content[start:end]
			if pat.SecretGroup > 0 {
				g := 2 * pat.SecretGroup
				if g+1 < len(loc) && loc[g] >= 0 {
					secret = content[loc[g]:loc[g+1]]
				}
			}

			out = append(out, PotentialMatch{
				Path:        path,
				Line:        line,
				StartColumn: utf8.RuneCountInString(content[lineStart:start]) + 1,
				EndColumn:   utf8.RuneCountInString(content[lineStart:colEnd]) + 1,
				Text:        content[start:end],
				Secret:      secret,
				LineText:    idx.lineText(line),
				PrevLine:    idx.lineText(line - 1),
				PatternIdx:  patternIdx,
			})
		}
	}

	return out
}
