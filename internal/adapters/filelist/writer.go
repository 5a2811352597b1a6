// Package filelist materializes path lists to disk, one path per line, with
// content-hash change detection to avoid needless rewrites.
package filelist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xcsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileListWriter = (*Writer)(nil)

// Writer implements ports.FileListWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write materializes the entries to the given path. The write is skipped
// when the existing content hashes identically; the returned flag reports
// whether the file was actually (re)written.
func (w *Writer) Write(path string, entries []string) (bool, error) {
	content := []byte(strings.Join(entries, "\n") + "\n")

	existing, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == xxhash.Sum64(content) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
		// First write.
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to read existing file list"), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create file list directory"), "path", path)
	}
	//nolint:gosec // Path is supplied by the target model
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write file list"), "path", path)
	}
	return true, nil
}
