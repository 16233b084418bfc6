package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/adapters/cas"
	"go.trai.ch/lessco/internal/adapters/fs"
	"go.trai.ch/lessco/internal/adapters/telemetry"
	"go.trai.ch/lessco/internal/app"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports/mocks"
	"go.trai.ch/lessco/internal/engine/compiler"
	"go.uber.org/mock/gomock"
)

const source = "a { color: @c; }"

type appFixture struct {
	root    string
	cfg     *domain.Config
	engine  *mocks.MockEngine
	logger  *mocks.MockLogger
	loader  *mocks.MockConfigLoader
	watcher *mocks.MockWatcher
	store   *cas.Store
	app     *app.App
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	cfg := domain.DefaultConfig(root)
	cfg.SiteBase = "/joomla"
	cfg.SiteURL = "https://example.com"

	f := &appFixture{
		root:    root,
		cfg:     cfg,
		engine:  mocks.NewMockEngine(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		loader:  mocks.NewMockConfigLoader(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		store:   cas.NewStore(),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	pipeline := compiler.NewPipeline(f.store, fs.NewHasher(fs.NewWalker()), f.engine, telemetry.NewNoOpTracer(), f.logger)
	f.app = app.New(f.loader, pipeline, f.store, fs.NewResolver(), f.watcher, telemetry.NewNoOpTracer(), f.logger)

	f.writeTemplate(t, domain.ClientSite, "beez", domain.DefaultLessFile, source)
	return f
}

func (f *appFixture) writeTemplate(t *testing.T, client domain.ClientKind, template, rel, content string) string {
	t.Helper()
	path := filepath.Join(domain.TemplateDir(f.cfg.ClientRoot(client), template), filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (f *appFixture) output(client domain.ClientKind, template string) string {
	return app.Locate(f.cfg, client, template).Output
}

func (f *appFixture) siteContext() domain.TemplateContext {
	return domain.TemplateContext{
		Client:    domain.ClientSite,
		Template:  "beez",
		Variables: map[string]string{"c": "red"},
	}
}

func TestLocate(t *testing.T) {
	cfg := domain.DefaultConfig("/srv")
	cfg.Admin.CSSFile = "css/admin.css"

	site := app.Locate(cfg, domain.ClientSite, "beez")
	assert.Equal(t, filepath.Join("/srv", "templates", "beez", "less", "template.less"), site.Input)
	assert.Equal(t, filepath.Join("/srv", "templates", "beez", "css", "template.css"), site.Output)
	assert.Equal(t, "site_beez_template.less.cache", site.CacheKey)
	assert.Equal(t, "templates/beez/css/template.css", site.TemplateURI(site.CSSFile))

	admin := app.Locate(cfg, domain.ClientAdmin, "beez")
	assert.Equal(t, filepath.Join("/srv", "administrator", "templates", "beez", "css", "admin.css"), admin.Output)
	assert.NotEqual(t, site.CacheKey, admin.CacheKey)
}

func TestApp_LoadConfig(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load("lessco.yaml").Return(f.cfg, nil)

	cfg, err := f.app.LoadConfig("lessco.yaml")
	require.NoError(t, err)
	assert.Same(t, f.cfg, cfg)
}

func TestApp_LoadConfig_Error(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load("").Return(nil, domain.ErrConfigNotFound)

	_, err := f.app.LoadConfig("")
	require.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_Clean(t *testing.T) {
	f := newAppFixture(t)
	require.NoError(t, f.store.Put(f.cfg.TmpPath, "site_beez_template.less.cache", domain.CacheRecord{SourceIdentity: "x"}))
	require.NoError(t, f.store.Put(f.cfg.TmpPath, "admin_beez_template.less.cache", domain.CacheRecord{SourceIdentity: "y"}))

	f.logger.EXPECT().Info(gomock.Any())
	f.logger.EXPECT().Info("removed 2 cache records")

	require.NoError(t, f.app.Clean(context.Background(), f.cfg))

	rec, err := f.store.Get(f.cfg.TmpPath, "site_beez_template.less.cache")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestApp_ConfigureLogging_IgnoresPlainLoggers(t *testing.T) {
	f := newAppFixture(t)
	// The mock logger cannot switch formats; the call must be a no-op.
	f.app.ConfigureLogging("json", true)
}
