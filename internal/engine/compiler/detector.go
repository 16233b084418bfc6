// Package compiler decides when a Less source needs recompiling, runs the
// engine and publishes the result.
package compiler

import (
	"fmt"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
)

// Decision is the outcome of a cache check.
type Decision struct {
	// Recompile is true when the source must be compiled again.
	Recompile bool
	// Prior is the valid cache record, or nil when there is none.
	Prior *domain.CacheRecord
	// Snapshot is the current modification marker of the source.
	Snapshot domain.Snapshot
}

// Detector owns the cache records and gates recompilation on them.
type Detector struct {
	store  ports.CacheStore
	hasher ports.Hasher
	writer *Writer
	logger ports.Logger
}

// NewDetector creates a new Detector.
func NewDetector(store ports.CacheStore, hasher ports.Hasher, writer *Writer, logger ports.Logger) *Detector {
	return &Detector{store: store, hasher: hasher, writer: writer, logger: logger}
}

// Check loads the record stored under key and compares it with the current
// state of input and the Less files below importDirs.
//
// A record that cannot be read is treated as absent. A record belonging to a
// different input is deleted.
func (d *Detector) Check(dir, key, input string, importDirs []string, force bool) (Decision, error) {
	snap, err := d.hasher.Snapshot(input, importDirs)
	if err != nil {
		return Decision{}, err
	}

	prior, err := d.store.Get(dir, key)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("ignoring unreadable cache record %s: %v", key, err))
		prior = nil
	}

	if prior != nil && !prior.Matches(input) {
		if err := d.store.Delete(dir, key); err != nil {
			d.logger.Warn(fmt.Sprintf("could not delete stale cache record %s: %v", key, err))
		}
		prior = nil
	}

	decision := Decision{Prior: prior, Snapshot: snap}
	switch {
	case force, prior == nil:
		decision.Recompile = true
	default:
		decision.Recompile = snap.ChangedSince(prior) || trackedFilesChanged(prior.Files, snap.Files)
	}
	return decision, nil
}

// Commit publishes next when it supersedes prior: the stylesheet is written to
// outputPath first, then the record is stored. It reports whether anything was
// written.
func (d *Detector) Commit(dir, key string, prior *domain.CacheRecord, next domain.CacheRecord, outputPath string) (bool, error) {
	if !next.Supersedes(prior) {
		return false, nil
	}

	if err := d.writer.Write(outputPath, next.Compiled); err != nil {
		return false, err
	}

	if err := d.store.Put(dir, key, next); err != nil {
		return true, err
	}
	return true, nil
}

// trackedFilesChanged reports whether the set of tracked files differs from
// prior or a recorded file got a newer modification time.
func trackedFilesChanged(prior, current map[string]int64) bool {
	if len(prior) != len(current) {
		return true
	}
	for path, recorded := range prior {
		mtime, ok := current[path]
		if !ok || mtime > recorded {
			return true
		}
	}
	return false
}
