package entropy

import (
	"math"
)

// minScoreLength is the shortest string the analyzer will accept as a
// plausible secret. Anything shorter carries too little signal for the
// statistical tests to separate random from non-random.
const minScoreLength = 8

// alphabetKind classifies the apparent character base of a candidate string.
type alphabetKind int

const (
	alphabetHex    alphabetKind = iota // [0-9a-f]
	alphabetBase36                     // letters + digits, single case
	alphabetBase64                     // mixed case, digits, +/=_-
)

// alphabetSize returns the nominal alphabet size used by the probability
// models.
func (k alphabetKind) alphabetSize() int {
	switch k {
	case alphabetHex:
		return 16
	case alphabetBase36:
		return 36
	default:
		return 64
	}
}

// digitFraction returns the expected fraction of digit characters in a
// uniformly random string over this alphabet.
func (k alphabetKind) digitFraction() float64 {
	switch k {
	case alphabetHex:
		return 10.0 / 16.0
	case alphabetBase36:
		return 10.0 / 36.0
	default:
		return 10.0 / 64.0
	}
}

// alphabetChars returns the concrete character set modeled for a kind; used
// to precompute bigram-table densities.
func alphabetChars(kind alphabetKind) []byte {
	var chars []byte
	for b := byte('0'); b <= '9'; b++ {
		chars = append(chars, b)
	}
	switch kind {
	case alphabetHex:
		for b := byte('a'); b <= 'f'; b++ {
			chars = append(chars, b)
		}
	case alphabetBase36:
		for b := byte('a'); b <= 'z'; b++ {
			chars = append(chars, b)
		}
	default:
		for b := byte('a'); b <= 'z'; b++ {
			chars = append(chars, b)
		}
		// Upper case folds onto lower case in the bigram table, so the
		// base64 model reuses the lowercase letters plus filler symbols.
		chars = append(chars, '+', '/')
	}
	return chars
}

// Analyzer scores candidate strings for statistical randomness. All lookup
// tables are computed once; the zero-allocation per-call cost is linear in
// the string length. Safe for concurrent use.
type Analyzer struct {
	threshold    float64
	requireDigit bool
}

// NewAnalyzer creates an analyzer that accepts strings whose estimated
// probability of being produced by a random source is at least threshold.
func NewAnalyzer(threshold float64) *Analyzer {
	return &Analyzer{
		threshold:    threshold,
		requireDigit: true,
	}
}

// IsRandom reports whether s looks like genuinely random material (a real
// secret) rather than a word, identifier, or placeholder.
func (a *Analyzer) IsRandom(s string) bool {
	if len(s) < minScoreLength {
		return false
	}

	// Strings made of letters alone are overwhelmingly dictionary words or
	// identifiers. Real keys over digit-bearing alphabets contain digits.
	if a.requireDigit && !containsDigit(s) && containsLetter(s) {
		return false
	}

	return a.Randomness(s) >= a.threshold
}

// Randomness returns the combined probability estimate that a uniformly
// random string over the apparent alphabet would look at least as structured
// as s. Low values mean "not random" (reject); values near 1 mean the string
// is statistically unremarkable for random data (accept).
func (a *Analyzer) Randomness(s string) float64 {
	kind := classifyAlphabet(s)

	pDistinct := distinctCharProbability(s, kind)
	pClass := digitClassProbability(s, kind)
	pBigram := commonBigramProbability(s, kind)

	return pDistinct * pClass * pBigram
}

// classifyAlphabet infers the base a string is drawn from by inspecting its
// characters. Symbols beyond the base64 filler set still classify as base64;
// the models only need an approximate alphabet size.
func classifyAlphabet(s string) alphabetKind {
	hex := true
	upper := false
	lower := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'g' && c <= 'z':
			lower = true
			hex = false
		case c >= 'A' && c <= 'F':
			upper = true
		case c >= 'G' && c <= 'Z':
			upper = true
			hex = false
		default:
			return alphabetBase64
		}
	}
	if hex && !(upper && lower) {
		return alphabetHex
	}
	if upper && lower {
		return alphabetBase64
	}
	return alphabetBase36
}

// distinctCharProbability estimates the probability that a random string of
// this length over the alphabet would use as few distinct characters as s
// does. A bound of C(b, d) * (d/b)^n is used: the chance all n characters
// land inside some d-sized subset.
func distinctCharProbability(s string, kind alphabetKind) float64 {
	var seen [256]bool
	d := 0
	for i := 0; i < len(s); i++ {
		c := foldASCII(s[i])
		if !seen[c] {
			seen[c] = true
			d++
		}
	}

	b := kind.alphabetSize()
	n := len(s)
	if d >= b || d >= n {
		return 1
	}

	logP := logChoose(b, d) + float64(n)*math.Log(float64(d)/float64(b))
	if logP >= 0 {
		return 1
	}
	return math.Exp(logP)
}

// digitClassProbability is the binomial tail probability of observing a digit
// count at least as extreme as the one in s, under the alphabet's expected
// digit fraction.
func digitClassProbability(s string, kind alphabetKind) float64 {
	n := len(s)
	k := 0
	for i := 0; i < n; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			k++
		}
	}

	p := kind.digitFraction()
	expected := p * float64(n)
	if float64(k) < expected {
		return binomialLowerTail(n, k, p)
	}
	return binomialUpperTail(n, k, p)
}

// commonBigramProbability is the binomial upper-tail probability that a
// random string would contain at least as many common-text bigrams as s.
// Strings dense in natural-language pairs score close to zero.
func commonBigramProbability(s string, kind alphabetKind) float64 {
	if len(s) < 2 {
		return 1
	}

	m := len(s) - 1
	k := 0
	for i := 0; i+1 < len(s); i++ {
		if isCommonBigram(s[i], s[i+1]) {
			k++
		}
	}

	return binomialUpperTail(m, k, densityByAlphabet[kind])
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// binomialUpperTail computes P(X >= k) for X ~ Binomial(n, p) in log space.
func binomialUpperTail(n, k int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	total := 0.0
	for i := k; i <= n; i++ {
		total += math.Exp(logBinomialPMF(n, i, p))
	}
	if total > 1 {
		return 1
	}
	return total
}

// binomialLowerTail computes P(X <= k) for X ~ Binomial(n, p).
func binomialLowerTail(n, k int, p float64) float64 {
	if k >= n {
		return 1
	}
	if p >= 1 {
		return 0
	}
	if p <= 0 {
		return 1
	}
	total := 0.0
	for i := 0; i <= k; i++ {
		total += math.Exp(logBinomialPMF(n, i, p))
	}
	if total > 1 {
		return 1
	}
	return total
}

func logBinomialPMF(n, k int, p float64) float64 {
	return logChoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log(1-p)
}

// logChoose computes ln(C(n, k)) via the log-gamma function.
func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	lgN, _ := math.Lgamma(float64(n + 1))
	lgK, _ := math.Lgamma(float64(k + 1))
	lgNK, _ := math.Lgamma(float64(n - k + 1))
	return lgN - lgK - lgNK
}
