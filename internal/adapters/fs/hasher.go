package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// lessExt is the extension of files tracked as imports.
const lessExt = ".less"

// Hasher fingerprints compiled output and snapshots source modification times.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashContent returns the hex XXHash of content.
func (h *Hasher) HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Snapshot records the modification time of input and of every Less file below
// importDirs. Missing import directories are skipped; a missing input is an error.
func (h *Hasher) Snapshot(input string, importDirs []string) (domain.Snapshot, error) {
	snap := domain.Snapshot{Files: make(map[string]int64)}

	if err := h.track(&snap, input); err != nil {
		return domain.Snapshot{}, err
	}

	for _, dir := range importDirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		for path := range h.walker.WalkExt(dir, lessExt) {
			if _, seen := snap.Files[path]; seen {
				continue
			}
			if err := h.track(&snap, path); err != nil {
				return domain.Snapshot{}, err
			}
		}
	}

	return snap, nil
}

func (h *Hasher) track(snap *domain.Snapshot, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	mtime := info.ModTime().UnixNano()
	snap.Files[path] = mtime
	if mtime > snap.Updated {
		snap.Updated = mtime
	}
	return nil
}
