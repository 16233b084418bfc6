package domain

import "go.trai.ch/zerr"

var (
	// ErrUnreadableInput is returned when the Less source of a template cannot be read.
	ErrUnreadableInput = zerr.New("less source is not readable")

	// ErrCacheReadFailed is returned when a cache record cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache record")

	// ErrCacheCorrupt is returned when a cache record exists but cannot be decoded.
	ErrCacheCorrupt = zerr.New("cache record is corrupt")

	// ErrCacheMarshalFailed is returned when a cache record cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when a cache record cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache record")

	// ErrCacheDeleteFailed is returned when a stale cache record cannot be removed.
	ErrCacheDeleteFailed = zerr.New("failed to delete cache record")

	// ErrCompilationFailed is returned when the Less engine rejects the source.
	ErrCompilationFailed = zerr.New("less compilation failed")

	// ErrEngineNotFound is returned when the Less engine binary cannot be located.
	ErrEngineNotFound = zerr.New("less engine not found")

	// ErrWriteFailed is returned when the compiled stylesheet cannot be written.
	ErrWriteFailed = zerr.New("failed to write compiled stylesheet")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no lessco.yaml exists in the directory tree.
	ErrConfigNotFound = zerr.New("could not find lessco.yaml")

	// ErrInvalidModeSelector is returned for a mode that is not frontend, backend or both.
	ErrInvalidModeSelector = zerr.New("invalid mode, expected 'frontend', 'backend' or 'both'")

	// ErrInvalidClientKind is returned for a client that is not site or admin.
	ErrInvalidClientKind = zerr.New("invalid client, expected 'site' or 'admin'")

	// ErrClientAssetNotFound is returned when no client-side compiler script is installed.
	ErrClientAssetNotFound = zerr.New("client-side less compiler not found")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrNilDocument is returned when a render is requested without a document.
	ErrNilDocument = zerr.New("document is nil")

	// ErrPageReadFailed is returned when an HTML page cannot be read for rendering.
	ErrPageReadFailed = zerr.New("failed to read page")

	// ErrCleanFailed is returned when removing cache records fails.
	ErrCleanFailed = zerr.New("failed to clean cache")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)
