package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/adapters/cas"
	"go.trai.ch/lessco/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "tmp")
	store := cas.NewStore()

	record := domain.CacheRecord{
		SourceIdentity: "/srv/templates/beez/less/template.less",
		LastModified:   1700000000000000000,
		Files:          map[string]int64{"/srv/templates/beez/less/template.less": 1700000000000000000},
		ContentHash:    "00000000deadbeef",
		Compiled:       "body{color:red}",
	}

	t.Run("put creates the directory and get reads it back", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(dir, "site_beez_template.less.cache", record))

		got, err := store.Get(dir, "site_beez_template.less.cache")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(dir, "site_missing_template.less.cache")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_GetCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "site_beez_template.less.cache"), []byte("{ invalid"), 0o600))

	_, err := store.Get(dir, "site_beez_template.less.cache")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheCorrupt.Error())
}

func TestStore_KeyWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, "site_beez_template.less", domain.CacheRecord{SourceIdentity: "x"}))

	_, err := os.Stat(filepath.Join(dir, "site_beez_template.less.cache"))
	require.NoError(t, err)
}

func TestStore_RejectsPathKeys(t *testing.T) {
	store := cas.NewStore()

	err := store.Put(t.TempDir(), "../escape.cache", domain.CacheRecord{})
	require.Error(t, err)

	_, err = store.Get(t.TempDir(), "")
	require.Error(t, err)
}

func TestStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, "a.cache", domain.CacheRecord{SourceIdentity: "a"}))
	require.NoError(t, store.Delete(dir, "a.cache"))
	require.NoError(t, store.Delete(dir, "a.cache"), "deleting twice is not an error")

	got, err := store.Get(dir, "a.cache")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Purge(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, "a.cache", domain.CacheRecord{}))
	require.NoError(t, store.Put(dir, "b.cache", domain.CacheRecord{}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o600))

	n, err := store.Purge(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name())
}

func TestStore_PurgeMissingDir(t *testing.T) {
	n, err := cas.NewStore().Purge(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
