package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lessco/internal/app"
)

func TestIsSource(t *testing.T) {
	assert.True(t, app.IsSource(filepath.Join("t", "beez", "less", "template.less")))
	assert.True(t, app.IsSource("variables.less"))
	assert.False(t, app.IsSource(filepath.Join("t", "beez", "css", "template.css")))
	assert.False(t, app.IsSource(filepath.Join("t", "beez", "css", ".template.css.123.tmp")))
	assert.False(t, app.IsSource(".#template.less"))
}

func TestTemplateOf(t *testing.T) {
	root := filepath.FromSlash("/srv/templates")

	name, ok := app.TemplateOf(root, filepath.Join(root, "beez", "less", "template.less"))
	assert.True(t, ok)
	assert.Equal(t, "beez", name)

	_, ok = app.TemplateOf(root, filepath.Join(root, "loose.less"))
	assert.False(t, ok)

	_, ok = app.TemplateOf(root, filepath.FromSlash("/srv/media/x.less"))
	assert.False(t, ok)
}
