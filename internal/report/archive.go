package report

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"agentscore/internal/scoring"
)

// WriteArchive writes the JSON report zstd-compressed, suitable for
// long-term CI artifact storage.
func WriteArchive(path string, rep *scoring.ScoreReport) error {
	data, err := EncodeJSON(rep)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", path, err)
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create archive writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("failed to write archive %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize archive %s: %w", path, err)
	}
	return f.Close()
}

// ReadArchive loads a zstd-compressed JSON report back.
func ReadArchive(path string) (*scoring.ScoreReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", path, err)
	}
	defer zr.Close()

	return DecodeJSON(zr)
}
