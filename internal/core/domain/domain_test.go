package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/core/domain"
)

func TestParseModeSelector(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.ModeSelector
		wantErr bool
	}{
		{in: "frontend", want: domain.ModeFrontend},
		{in: "", want: domain.ModeFrontend},
		{in: "0", want: domain.ModeFrontend},
		{in: "backend", want: domain.ModeBackend},
		{in: "1", want: domain.ModeBackend},
		{in: "Both", want: domain.ModeBoth},
		{in: "2", want: domain.ModeBoth},
		{in: "3", wantErr: true},
		{in: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseModeSelector(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidModeSelector.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeSelector_Covers(t *testing.T) {
	assert.True(t, domain.ModeFrontend.Covers(domain.ClientSite))
	assert.False(t, domain.ModeFrontend.Covers(domain.ClientAdmin))
	assert.False(t, domain.ModeBackend.Covers(domain.ClientSite))
	assert.True(t, domain.ModeBackend.Covers(domain.ClientAdmin))
	assert.True(t, domain.ModeBoth.Covers(domain.ClientSite))
	assert.True(t, domain.ModeBoth.Covers(domain.ClientAdmin))
}

func TestParseClientKind(t *testing.T) {
	kind, err := domain.ParseClientKind("administrator")
	require.NoError(t, err)
	assert.Equal(t, domain.ClientAdmin, kind)

	kind, err = domain.ParseClientKind("")
	require.NoError(t, err)
	assert.Equal(t, domain.ClientSite, kind)

	_, err = domain.ParseClientKind("api")
	require.ErrorContains(t, err, domain.ErrInvalidClientKind.Error())
}

func TestCacheKey(t *testing.T) {
	site := domain.CacheKey(domain.ClientSite, "protostar", "/srv/templates/protostar/less/template.less")
	admin := domain.CacheKey(domain.ClientAdmin, "protostar", "/srv/administrator/templates/protostar/less/template.less")
	other := domain.CacheKey(domain.ClientSite, "beez", "/srv/templates/beez/less/template.less")

	assert.Equal(t, "site_protostar_template.less.cache", site)
	assert.NotEqual(t, site, admin)
	assert.NotEqual(t, site, other)
}

func TestCacheRecord_Matches(t *testing.T) {
	var nilRecord *domain.CacheRecord
	assert.False(t, nilRecord.Matches("/a.less"))

	r := &domain.CacheRecord{SourceIdentity: "/a.less"}
	assert.True(t, r.Matches("/a.less"))
	assert.False(t, r.Matches("/b.less"))
}

func TestCacheRecord_Supersedes(t *testing.T) {
	prior := &domain.CacheRecord{LastModified: 100}

	assert.True(t, (&domain.CacheRecord{LastModified: 1}).Supersedes(nil))
	assert.True(t, (&domain.CacheRecord{LastModified: 101}).Supersedes(prior))
	assert.False(t, (&domain.CacheRecord{LastModified: 100}).Supersedes(prior))
	assert.False(t, (&domain.CacheRecord{LastModified: 99}).Supersedes(prior))
}

func TestSnapshot_ChangedSince(t *testing.T) {
	prior := &domain.CacheRecord{LastModified: 100}

	assert.True(t, domain.Snapshot{Updated: 1}.ChangedSince(nil))
	assert.True(t, domain.Snapshot{Updated: 101}.ChangedSince(prior))
	assert.False(t, domain.Snapshot{Updated: 100}.ChangedSince(prior))
}

func TestConfig_ClientAccessors(t *testing.T) {
	root := filepath.FromSlash("/srv/www")
	cfg := domain.DefaultConfig(root)
	cfg.SiteBase = "/joomla/"
	cfg.SiteURL = "https://example.com/"
	cfg.Admin.CSSFile = "css/admin.css"

	assert.Equal(t, root, cfg.ClientRoot(domain.ClientSite))
	assert.Equal(t, filepath.Join(root, "administrator"), cfg.ClientRoot(domain.ClientAdmin))
	assert.Equal(t, "css/template.css", cfg.Paths(domain.ClientSite).CSSFile)
	assert.Equal(t, "css/admin.css", cfg.Paths(domain.ClientAdmin).CSSFile)
	assert.Equal(t, "/joomla", cfg.BasePath(domain.ClientSite))
	assert.Equal(t, "/administrator", cfg.BasePath(domain.ClientAdmin))
	assert.Equal(t, "https://example.com/joomla/", cfg.AbsoluteBase(domain.ClientSite))
}

func TestConfig_Modes(t *testing.T) {
	cfg := domain.DefaultConfig("/srv")
	assert.Equal(t, domain.RenderServerCompiled, cfg.RenderMode())
	assert.Equal(t, domain.FormatPretty, cfg.Format())

	cfg.ClientSide.Enabled = true
	cfg.Compress = true
	assert.Equal(t, domain.RenderClientSide, cfg.RenderMode())
	assert.Equal(t, domain.FormatCompressed, cfg.Format())
}

func TestSaveEvent(t *testing.T) {
	ev := domain.SaveEvent{
		Context: domain.AdvancedStyleSaveContext,
		Params:  map[string]string{"useLESS": "1", "cssCompress": "0"},
	}
	assert.True(t, ev.IsTemplateStyle())
	assert.True(t, ev.UsesLess())
	assert.False(t, ev.Compressed())

	ev.Context = "com_content.article"
	ev.Params["useLESS"] = "false"
	assert.False(t, ev.IsTemplateStyle())
	assert.False(t, ev.UsesLess())
}

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv", "templates", "beez"), domain.TemplateDir("/srv", "beez"))
	assert.Equal(t, "templates/beez/", domain.TemplateURI("beez"))
}
