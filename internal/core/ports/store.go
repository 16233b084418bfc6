package ports

import "go.trai.ch/lessco/internal/core/domain"

// CacheStore persists one CacheRecord per key below a cache directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Get retrieves the record stored under key.
	// Returns nil, nil if not found and domain.ErrCacheCorrupt if it cannot be decoded.
	Get(dir, key string) (*domain.CacheRecord, error)

	// Put replaces the record stored under key.
	Put(dir, key string, record domain.CacheRecord) error

	// Delete removes the record stored under key. Missing records are not an error.
	Delete(dir, key string) error

	// Purge removes every record in dir and returns how many were removed.
	Purge(dir string) (int, error)
}
