package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepbrainspace/guardy/pkg/types"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file; %v", err)
	}
	return path
}

func TestIsBinaryExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".png", true},
		{".exe", true},
		{".so", true},
		{".zip", true},
		{".woff2", true},
		{".go", false},
		{".md", false},
		{".env", false},
		// .key files carry PEM private keys far more often than Keynote
		// bundles and must reach the content sniff.
		{".key", false},
		{".pem", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBinaryExtension(tt.ext); got != tt.want {
			t.Errorf("IsBinaryExtension(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestBinaryFilterExtensionStage(t *testing.T) {
	f := NewBinaryFilter()

	// A known binary extension is rejected without touching the file;
	// the path does not even need to exist.
	got := f.Check(types.FileCandidate{Path: "missing/logo.png", Ext: ".png"})
	if !got.Exclude {
		t.Error("expected .png to be excluded by extension alone")
	}
}

func TestBinaryFilterContentSniff(t *testing.T) {
	f := NewBinaryFilter()

	tests := []struct {
		name    string
		content []byte
		exclude bool
	}{
		{"plain text", []byte("password = \"hunter2\"\n"), false},
		{"empty file", nil, false},
		{"null byte in header", append([]byte("MZ"), 0x00, 0x01, 0x02), true},
		{"elf header", []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "candidate", tt.content)
			got := f.Check(types.FileCandidate{Path: path, Ext: ""})
			if got.Exclude != tt.exclude {
				t.Errorf("Exclude = %v, want %v (reason %q)", got.Exclude, tt.exclude, got.Reason)
			}
		})
	}
}

func TestBinaryFilterUnreadableFile(t *testing.T) {
	f := NewBinaryFilter()

	// Read failures are not this filter's call; the pipeline reports them.
	got := f.Check(types.FileCandidate{Path: filepath.Join(t.TempDir(), "absent.txt"), Ext: ".txt"})
	if got.Exclude {
		t.Error("unreadable file must not be excluded by the binary filter")
	}
}
