package domain

// CacheRecord is the persisted state of the last successful compilation of one
// input file. Records are replaced wholesale and never merged.
type CacheRecord struct {
	// SourceIdentity is the absolute path of the input the record belongs to.
	SourceIdentity string `json:"source"`
	// LastModified is the compile time, in Unix nanoseconds, or the newest
	// modification time across the tracked files when that is later.
	LastModified int64 `json:"updated"`
	// Files maps every tracked file to its modification time.
	Files map[string]int64 `json:"files"`
	// ContentHash is the xxhash of Compiled.
	ContentHash string `json:"hash"`
	// Compiled is the CSS produced for this record.
	Compiled string `json:"compiled"`
}

// Matches reports whether the record belongs to the given input identity.
func (r *CacheRecord) Matches(identity string) bool {
	return r != nil && r.SourceIdentity == identity
}

// Supersedes reports whether r may replace prior. A nil prior is always
// superseded; otherwise the modification marker must strictly increase.
func (r *CacheRecord) Supersedes(prior *CacheRecord) bool {
	if prior == nil {
		return true
	}
	return r.LastModified > prior.LastModified
}

// Snapshot is the modification marker of an input and its tracked imports.
type Snapshot struct {
	Files   map[string]int64
	Updated int64
}

// ChangedSince reports whether the snapshot carries a newer modification marker
// than the record.
func (s Snapshot) ChangedSince(r *CacheRecord) bool {
	if r == nil {
		return true
	}
	return s.Updated > r.LastModified
}
