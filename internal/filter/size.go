package filter

import (
	"fmt"

	"github.com/deepbrainspace/guardy/pkg/types"
)

// SizeFilter rejects files whose metadata-reported size exceeds the
// configured ceiling. No file content is read; oversized files never reach
// memory.
type SizeFilter struct {
	maxBytes int64
}

// NewSizeFilter creates a size filter with the given ceiling in bytes.
func NewSizeFilter(maxBytes int64) *SizeFilter {
	return &SizeFilter{maxBytes: maxBytes}
}

// Check decides whether the candidate exceeds the size ceiling.
func (f *SizeFilter) Check(c types.FileCandidate) Decision {
	if c.Size > f.maxBytes {
		return exclude(fmt.Sprintf("file size %d exceeds ceiling %d", c.Size, f.maxBytes))
	}
	return include
}
