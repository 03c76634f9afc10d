package filter

import (
	"testing"

	"github.com/deepbrainspace/guardy/pkg/types"
)

func TestSizeFilter(t *testing.T) {
	f := NewSizeFilter(1024)

	tests := []struct {
		name    string
		size    int64
		exclude bool
	}{
		{"empty file", 0, false},
		{"under ceiling", 512, false},
		{"exactly at ceiling", 1024, false},
		{"one byte over", 1025, true},
		{"far over", 10 << 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Check(types.FileCandidate{Path: "a.txt", Size: tt.size})
			if got.Exclude != tt.exclude {
				t.Errorf("size %d: Exclude = %v, want %v", tt.size, got.Exclude, tt.exclude)
			}
		})
	}
}
