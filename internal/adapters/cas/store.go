// Package cas persists compilation cache records as one JSON file per key.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a file-per-record strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record stored under key in dir.
func (s *Store) Get(dir, key string) (*domain.CacheRecord, error) {
	filename, err := s.filename(dir, key)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is constructed from the cache directory and a sanitised key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	var record domain.CacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCorrupt.Error()), "key", key)
	}

	return &record, nil
}

// Put replaces the record stored under key in dir.
func (s *Store) Put(dir, key string, record domain.CacheRecord) error {
	filename, err := s.filename(dir, key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	if err := os.WriteFile(filename, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	return nil
}

// Delete removes the record stored under key. A missing record is not an error.
func (s *Store) Delete(dir, key string) error {
	filename, err := s.filename(dir, key)
	if err != nil {
		return err
	}

	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error()), "key", key)
	}
	return nil
}

// Purge removes every cache record in dir. Other files are left alone.
func (s *Store) Purge(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+domain.CacheFileExt))
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrCleanFailed.Error())
	}

	removed := 0
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", match)
		}
		removed++
	}
	return removed, nil
}

// filename maps a key onto a file directly inside dir.
func (s *Store) filename(dir, key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", zerr.With(domain.ErrCacheWriteFailed, "key", key)
	}
	if !strings.HasSuffix(key, domain.CacheFileExt) {
		key += domain.CacheFileExt
	}
	return filepath.Join(dir, key), nil
}
