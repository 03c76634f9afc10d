package patterns

import (
	"regexp/syntax"
	"strings"
)

// minKeywordLength is the shortest literal worth feeding the prefilter
// automaton. Shorter literals occur in almost every file and would make the
// prefilter useless.
const minKeywordLength = 3

// extractKeywords derives prefilter keywords from a regular expression. The
// returned set is sound for prefiltering: every string the regex matches is
// guaranteed to contain at least one of the keywords (case-insensitively).
// An empty result means no usable literal exists and the pattern must be
// treated as always active.
func extractKeywords(expr string) []string {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil
	}
	return requiredLiterals(re.Simplify())
}

// requiredLiterals returns a set of lowercased literals such that every match
// of re contains at least one, or nil when no such set exists.
func requiredLiterals(re *syntax.Regexp) []string {
	switch re.Op {
	case syntax.OpLiteral:
		lit := strings.ToLower(string(re.Rune))
		if len(lit) < minKeywordLength {
			return nil
		}
		return []string{lit}

	case syntax.OpCapture:
		return requiredLiterals(re.Sub[0])

	case syntax.OpPlus:
		// The sub-expression occurs at least once, so its required
		// literals are required of the whole.
		return requiredLiterals(re.Sub[0])

	case syntax.OpRepeat:
		if re.Min >= 1 {
			return requiredLiterals(re.Sub[0])
		}
		return nil

	case syntax.OpConcat:
		// Any child's required set covers the whole concatenation; pick
		// the strongest one (longest guaranteed literal).
		var best []string
		bestLen := 0
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub)
			if lits == nil {
				continue
			}
			if l := shortestLength(lits); l > bestLen {
				best = lits
				bestLen = l
			}
		}
		return best

	case syntax.OpAlternate:
		// A match goes through exactly one branch, so every branch must
		// contribute a required literal for the union to be sound.
		var union []string
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub)
			if lits == nil {
				return nil
			}
			union = append(union, lits...)
		}
		return dedupe(union)

	default:
		// Character classes, wildcards, anchors, optional groups:
		// nothing is guaranteed to appear.
		return nil
	}
}

// shortestLength returns the length of the shortest literal in the set; the
// prefilter is only as strong as its weakest keyword.
func shortestLength(lits []string) int {
	shortest := len(lits[0])
	for _, l := range lits[1:] {
		if len(l) < shortest {
			shortest = len(l)
		}
	}
	return shortest
}

func dedupe(lits []string) []string {
	seen := make(map[string]struct{}, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
