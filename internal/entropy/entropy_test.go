package entropy

import (
	"testing"
)

func TestIsRandom(t *testing.T) {
	analyzer := NewAnalyzer(1e-5)

	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{
			name:   "dictionary word",
			input:  "password",
			expect: false,
		},
		{
			name:   "random base64 material",
			input:  "hXp2mK9fLqR7sT4vWn8jC3bZ5yD6gE1aQx7Rx2Tu",
			expect: true,
		},
		{
			name:   "random hex digest",
			input:  "593ad699fc1f7cd5bb2e35cbf0f19c55",
			expect: true,
		},
		{
			name:   "repeated characters",
			input:  "aaaaaaaa1111",
			expect: false,
		},
		{
			name:   "identifier-shaped placeholder",
			input:  "config_value_12345",
			expect: false,
		},
		{
			name:   "letters only never passes",
			input:  "abcdefghjklmnpqrstvwxyz",
			expect: false,
		},
		{
			name:   "too short to judge",
			input:  "ab12xyz",
			expect: false,
		},
		{
			name:   "mixed random with digits",
			input:  "x9K2mP7qL4wN8rT3",
			expect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzer.IsRandom(tt.input); got != tt.expect {
				t.Errorf("IsRandom(%q) = %v, want %v (randomness %g)",
					tt.input, got, tt.expect, analyzer.Randomness(tt.input))
			}
		})
	}
}

func TestClassifyAlphabet(t *testing.T) {
	tests := []struct {
		input string
		want  alphabetKind
	}{
		{"deadbeef0123", alphabetHex},
		{"DEADBEEF0123", alphabetHex},
		{"abcxyz123", alphabetBase36},
		{"AbC123xyz", alphabetBase64},
		{"abc+/123=", alphabetBase64},
		{"0123456789", alphabetHex},
	}

	for _, tt := range tests {
		if got := classifyAlphabet(tt.input); got != tt.want {
			t.Errorf("classifyAlphabet(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRandomnessOrdering(t *testing.T) {
	// Structured strings must score strictly lower than random ones.
	structured := "aaaaaaaaaaaa1111"
	random := "hXp2mK9fLqR7sT4vWn8jC3bZ5yD6gE1a"

	analyzer := NewAnalyzer(1e-5)
	if analyzer.Randomness(structured) >= analyzer.Randomness(random) {
		t.Errorf("expected %q to score below %q", structured, random)
	}
}

func TestBigramTableDensity(t *testing.T) {
	// The binomial model needs the common-bigram table to be a strict
	// minority of each alphabet's pair space, or the test loses all power.
	for kind, density := range densityByAlphabet {
		if density <= 0 || density >= 0.5 {
			t.Errorf("alphabet %v: implausible bigram density %g", kind, density)
		}
	}
}

func TestThresholdBoundaries(t *testing.T) {
	// A zero threshold accepts anything long enough with a digit; an
	// impossible threshold rejects even clean random material.
	permissive := NewAnalyzer(0)
	if !permissive.IsRandom("x9K2mP7qL4wN8rT3") {
		t.Error("zero threshold rejected random material")
	}

	strict := NewAnalyzer(1.1)
	if strict.IsRandom("x9K2mP7qL4wN8rT3") {
		t.Error("impossible threshold accepted material")
	}
}
