package filter

import "testing"

func TestCommentFilterSuppressed(t *testing.T) {
	f := NewCommentFilter([]string{"guardy:ignore", "guardy:allow"})

	tests := []struct {
		name     string
		line     string
		prevLine string
		want     bool
	}{
		{
			name: "directive on match line",
			line: `token = "abc123" # guardy:ignore`,
			want: true,
		},
		{
			name:     "directive on preceding line",
			line:     `token = "abc123"`,
			prevLine: `// guardy:ignore test fixture`,
			want:     true,
		},
		{
			name: "alternate marker",
			line: `token = "abc123" // guardy:allow`,
			want: true,
		},
		{
			name: "no directive",
			line: `token = "abc123"`,
			want: false,
		},
		{
			name:     "directive two lines above has no effect",
			line:     `token = "abc123"`,
			prevLine: ``,
			want:     false,
		},
		{
			name: "marker substring without namespace",
			line: `token = "abc123" # ignore`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Suppressed(tt.line, tt.prevLine); got != tt.want {
				t.Errorf("Suppressed(%q, %q) = %v, want %v", tt.line, tt.prevLine, got, tt.want)
			}
		})
	}
}

func TestCommentFilterNoMarkers(t *testing.T) {
	f := NewCommentFilter(nil)
	if f.Suppressed(`token = "abc" # guardy:ignore`, "") {
		t.Error("filter with no markers must never suppress")
	}
}
