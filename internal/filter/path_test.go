package filter

import (
	"testing"

	ignore "github.com/sabhiram/go-gitignore"
)

func TestPathFilterGlobs(t *testing.T) {
	f, warnings := NewPathFilter([]string{".git/**", "node_modules/**", "*.min.js", "package-lock.json"})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	tests := []struct {
		rel     string
		exclude bool
	}{
		{".git/config", true},
		{".git/objects/ab/cdef", true},
		{"node_modules/lodash/index.js", true},
		{"app.min.js", true},
		{"assets/vendor/app.min.js", true},
		{"package-lock.json", true},
		{"sub/package-lock.json", true},
		{"src/main.go", false},
		{"gitignore.md", false},
		{"minified.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got := f.Check(tt.rel)
			if got.Exclude != tt.exclude {
				t.Errorf("Check(%q).Exclude = %v, want %v (reason %q)", tt.rel, got.Exclude, tt.exclude, got.Reason)
			}
			if got.Exclude && got.Reason == "" {
				t.Error("excluding decision must carry a reason")
			}
		})
	}
}

func TestPathFilterInvalidGlob(t *testing.T) {
	f, warnings := NewPathFilter([]string{"[unclosed", "*.lock"})
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the invalid glob, got %v", warnings)
	}

	// The valid glob must still apply.
	if !f.Check("Cargo.lock").Exclude {
		t.Error("expected *.lock to survive the invalid sibling glob")
	}
	if f.Check("main.go").Exclude {
		t.Error("main.go should not be excluded")
	}
}

func TestPathFilterGitignore(t *testing.T) {
	f, _ := NewPathFilter(nil)
	f.SetGitignore(ignore.CompileIgnoreLines("dist/", "*.log"))

	tests := []struct {
		rel     string
		exclude bool
	}{
		{"dist/bundle.js", true},
		{"server.log", true},
		{"logs/app.log", true},
		{"src/server.go", false},
	}

	for _, tt := range tests {
		got := f.Check(tt.rel)
		if got.Exclude != tt.exclude {
			t.Errorf("Check(%q).Exclude = %v, want %v", tt.rel, got.Exclude, tt.exclude)
		}
	}
}
