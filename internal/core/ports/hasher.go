package ports

import "go.trai.ch/lessco/internal/core/domain"

// Hasher defines the interface for fingerprinting sources and outputs.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)

	// HashContent returns the hex digest of content.
	HashContent(content []byte) string

	// Snapshot captures the modification marker of input and every Less file
	// found in importDirs.
	Snapshot(input string, importDirs []string) (domain.Snapshot, error)
}
