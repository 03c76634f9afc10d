package filter

import "strings"

// CommentFilter drops matches covered by an inline suppression directive. A
// directive on the same line as a match suppresses that line's matches; a
// directive on the line immediately preceding a match suppresses the
// following line's matches. Recognition is a plain substring check; the
// directive vocabulary is small and fixed, no regex needed.
type CommentFilter struct {
	markers []string
}

// NewCommentFilter creates a comment filter for the given directive markers
// (e.g. "guardy:ignore").
func NewCommentFilter(markers []string) *CommentFilter {
	return &CommentFilter{markers: markers}
}

// Suppressed reports whether a match on line (with prevLine being the line
// immediately above, or "" on the first line) is covered by a directive.
func (f *CommentFilter) Suppressed(line, prevLine string) bool {
	return f.containsMarker(line) || f.containsMarker(prevLine)
}

func (f *CommentFilter) containsMarker(line string) bool {
	if line == "" {
		return false
	}
	for _, marker := range f.markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
