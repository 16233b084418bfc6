package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/adapters/fs"
	"go.trai.ch/lessco/internal/core/domain"
)

func writeTemplate(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, "templates", name, "less")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "template.less")
	require.NoError(t, os.WriteFile(path, []byte("@color: red;"), 0o600))
	return path
}

func TestResolver_ResolveInputs_TemplateGlob(t *testing.T) {
	root := t.TempDir()
	beez := writeTemplate(t, root, "beez")
	protostar := writeTemplate(t, root, "protostar")

	resolved, err := fs.NewResolver().ResolveInputs([]string{"templates/*/less/template.less"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{beez, protostar}, resolved)
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"templates/*/less/template.less"}, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnreadableInput.Error())
}

func TestResolver_ResolveInputs_Deduplication(t *testing.T) {
	root := t.TempDir()
	beez := writeTemplate(t, root, "beez")

	patterns := []string{"templates/beez/less/template.less", "templates/*/less/*.less", beez}
	resolved, err := fs.NewResolver().ResolveInputs(patterns, root)
	require.NoError(t, err)
	assert.Equal(t, []string{beez}, resolved)
}

func TestResolver_ResolveInputs_Sorting(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		writeTemplate(t, root, name)
	}

	resolved, err := fs.NewResolver().ResolveInputs([]string{"templates/*/less/template.less"}, root)
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Contains(t, resolved[0], "alpha")
	assert.Contains(t, resolved[1], "mid")
	assert.Contains(t, resolved[2], "zeta")
}
