// Package fs provides file system adapters for walking, hashing and resolving
// Less sources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping VCS directories and entries
// matching ignores. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
				return skipAction
			}

			if d.IsDir() || w.ignored(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// WalkExt yields the files below root whose name ends with ext.
func (w *Walker) WalkExt(root, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, nil) {
			if !strings.EqualFold(filepath.Ext(path), ext) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// shouldSkipDir returns filepath.SkipDir for directories that must not be descended.
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}

	switch d.Name() {
	case ".git", ".jj", "node_modules":
		return filepath.SkipDir
	}

	if w.ignored(d.Name(), ignores) {
		return filepath.SkipDir
	}
	return nil
}

func (w *Walker) ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
