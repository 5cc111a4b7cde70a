//go:build !cgo

package metrics

import (
	"context"
	"errors"
)

// ErrNoCGO is returned when metric extraction is unavailable due to missing CGO.
var ErrNoCGO = errors.New("metric extraction requires CGO (tree-sitter)")

// Extractor produces FileSummary values from Python source files.
// This is a stub implementation for non-CGO builds.
type Extractor struct{}

// NewExtractor creates a new metric extractor.
// Returns nil when CGO is disabled.
func NewExtractor() *Extractor {
	return nil
}

// ExtractFile analyzes a single file.
// Stub implementation returns an error.
func (e *Extractor) ExtractFile(ctx context.Context, path string, canonicalPath string) (*FileSummary, error) {
	return nil, ErrNoCGO
}

// ExtractSource analyzes source bytes.
// Stub implementation returns an error.
func (e *Extractor) ExtractSource(ctx context.Context, canonicalPath string, source []byte) (*FileSummary, error) {
	return nil, ErrNoCGO
}

// Parser wraps tree-sitter parsing functionality.
// This is a stub implementation for non-CGO builds.
type Parser struct{}

// NewParser creates a new tree-sitter parser.
// Returns nil when CGO is disabled.
func NewParser() *Parser {
	return nil
}

// IsAvailable returns whether metric extraction is available.
// Returns false when CGO is disabled.
func IsAvailable() bool {
	return false
}
