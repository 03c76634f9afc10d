package scanner

import (
	"sort"
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/deepbrainspace/guardy/internal/patterns"
)

// Prefilter eliminates patterns that cannot possibly match a file by
// scanning its content once with a multi-pattern keyword automaton. The
// result is a safe superset of the patterns worth running: every pattern
// whose regex could match is guaranteed to be present because its keywords
// are literal substrings of any match.
type Prefilter struct {
	lib  *patterns.Library
	trie *ahocorasick.Trie
}

// NewPrefilter builds the keyword automaton over the library's full keyword
// set. Built once at startup; safe for concurrent use afterwards.
func NewPrefilter(lib *patterns.Library) *Prefilter {
	return &Prefilter{
		lib:  lib,
		trie: ahocorasick.NewTrieBuilder().AddStrings(lib.Keywords()).Build(),
	}
}

// ActivePatterns returns the sorted indices of patterns whose keywords occur
// in content, unioned with the always-active patterns. Only keyword
// presence matters; overlapping match details are ignored.
func (p *Prefilter) ActivePatterns(content string) []int {
	active := make(map[int]struct{})

	// Keywords are stored lowercase, so fold the content once.
	hits := p.trie.MatchString(strings.ToLower(content))
	for _, hit := range hits {
		for _, idx := range p.lib.PatternsForKeyword(string(hit.Match())) {
			active[idx] = struct{}{}
		}
	}

	for _, idx := range p.lib.AlwaysActive() {
		active[idx] = struct{}{}
	}

	out := make([]int, 0, len(active))
	for idx := range active {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
