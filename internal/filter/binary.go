package filter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/deepbrainspace/guardy/pkg/types"
)

// sniffLength is how many leading bytes are inspected when the extension
// alone cannot classify a file.
const sniffLength = 512

// BinaryFilter rejects files carrying binary content in two stages: an O(1)
// extension lookup that needs no I/O, then a content sniff of the first 512
// bytes for files with unknown extensions.
type BinaryFilter struct{}

// NewBinaryFilter creates a binary filter.
func NewBinaryFilter() *BinaryFilter {
	return &BinaryFilter{}
}

// Check decides whether the candidate is binary. Stage one consults the
// known-extension table; stage two opens the file and sniffs its head. A
// sniff that fails to read the file does not exclude it here; the read
// error is surfaced later by the file pipeline and counted as a skip.
func (f *BinaryFilter) Check(c types.FileCandidate) Decision {
	if IsBinaryExtension(c.Ext) {
		return exclude(fmt.Sprintf("known binary extension %q", c.Ext))
	}

	head, err := readHead(c.Path)
	if err != nil || len(head) == 0 {
		return include
	}

	if bytes.IndexByte(head, 0x00) >= 0 {
		return exclude("null byte in file header")
	}

	if !looksTextual(head) {
		return exclude(fmt.Sprintf("binary content type %q", mimetype.Detect(head).String()))
	}

	return include
}

// readHead reads up to sniffLength bytes from the start of the file.
func readHead(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

// looksTextual reports whether the sniffed header detects as a text type.
// mimetype arranges its hierarchy so that every textual format has
// text/plain as an ancestor.
func looksTextual(head []byte) bool {
	for mtype := mimetype.Detect(head); mtype != nil; mtype = mtype.Parent() {
		if strings.HasPrefix(mtype.String(), "text/") {
			return true
		}
	}
	return false
}
