package compiler

import (
	"os"
	"path/filepath"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer replaces compiled stylesheets atomically.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces the file at path with content. The content is staged in a
// temporary file next to path and renamed into place, so readers never see a
// partial stylesheet.
func (w *Writer) Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op once renamed

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}
	return nil
}

// Exists reports whether path names an existing file.
func (w *Writer) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
