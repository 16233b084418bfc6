package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/adapters/document"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRender_NilDocument(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Render(context.Background(), f.cfg, f.siteContext(), nil)
	require.ErrorContains(t, err, domain.ErrNilDocument.Error())
}

func TestRender_ModeDoesNotCoverClient(t *testing.T) {
	f := newAppFixture(t)
	f.writeTemplate(t, domain.ClientAdmin, "beez", domain.DefaultLessFile, source)
	doc := mocks.NewMockDocument(gomock.NewController(t))

	tc := f.siteContext()
	tc.Client = domain.ClientAdmin

	require.NoError(t, f.app.Render(context.Background(), f.cfg, tc, doc))
	assert.NoFileExists(t, f.output(domain.ClientAdmin, "beez"))
}

func TestRender_UnreadableInput(t *testing.T) {
	f := newAppFixture(t)
	doc := mocks.NewMockDocument(gomock.NewController(t))

	tc := f.siteContext()
	tc.Template = "missing"

	require.NoError(t, f.app.Render(context.Background(), f.cfg, tc, doc))
	assert.NoDirExists(t, f.cfg.TmpPath)
}

func TestRender_ServerCompiled_CompilesOnce(t *testing.T) {
	f := newAppFixture(t)
	f.engine.EXPECT().
		Compile(gomock.Any(), source, gomock.Any()).
		Return("a{color:red}", nil).
		Times(1)

	for range 3 {
		page := document.NewPage(document.TypeHTML, []byte("<html><head></head></html>"))
		require.NoError(t, f.app.Render(context.Background(), f.cfg, f.siteContext(), page))
	}

	css, err := os.ReadFile(f.output(domain.ClientSite, "beez"))
	require.NoError(t, err)
	assert.Equal(t, "a{color:red}", string(css))

	rec, err := f.store.Get(f.cfg.TmpPath, "site_beez_template.less.cache")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "a{color:red}", rec.Compiled)
}

func TestRender_ServerCompiled_RequestOptions(t *testing.T) {
	f := newAppFixture(t)
	f.cfg.Compress = true
	f.cfg.PreserveComments = true
	f.cfg.Engine.Args = []string{"--math=always"}

	input := filepath.Join(domain.TemplateDir(f.root, "beez"), "less", "template.less")
	f.engine.EXPECT().
		Compile(gomock.Any(), source, gomock.Cond(func(opts domain.EngineOptions) bool {
			return opts.Filename == input &&
				opts.Format == domain.FormatCompressed &&
				opts.PreserveComments &&
				len(opts.ImportPaths) == 1 && opts.ImportPaths[0] == filepath.Dir(input) &&
				opts.Variables["bg"] == `"img/bg.png"` &&
				opts.Variables["empty"] == `""` &&
				opts.Args[0] == "--math=always"
		})).
		Return("a{}", nil)

	tc := f.siteContext()
	tc.Variables = map[string]string{"bg": " img/bg.png ", "empty": "", "textLogo": "Hello"}

	page := document.NewPage(document.TypeHTML, nil)
	require.NoError(t, f.app.Render(context.Background(), f.cfg, tc, page))
}

func TestRender_ServerCompiled_Force(t *testing.T) {
	f := newAppFixture(t)
	f.cfg.Force = true
	f.engine.EXPECT().Compile(gomock.Any(), source, gomock.Any()).Return("a{}", nil).Times(2)

	for range 2 {
		page := document.NewPage(document.TypeHTML, nil)
		require.NoError(t, f.app.Render(context.Background(), f.cfg, f.siteContext(), page))
	}
}

func TestRender_CompilationFailureIsAWarning(t *testing.T) {
	f := newAppFixture(t)
	out := f.output(domain.ClientSite, "beez")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o750))
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o600))

	f.engine.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", zerr.New(domain.ErrCompilationFailed.Error()))
	f.logger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "failed to compile beez") &&
			strings.Contains(msg, domain.ErrCompilationFailed.Error())
	}))

	page := document.NewPage(document.TypeHTML, nil)
	require.NoError(t, f.app.Render(context.Background(), f.cfg, f.siteContext(), page))

	css, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(css))
}

func TestRenderFile(t *testing.T) {
	f := newAppFixture(t)
	f.engine.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return("a{}", nil)

	page := filepath.Join(f.root, "index.html")
	body := `<html><head><link rel="stylesheet" href="/joomla/templates/beez/css/template.css"></head></html>`
	require.NoError(t, os.WriteFile(page, []byte(body), 0o600))

	var buf bytes.Buffer
	require.NoError(t, f.app.RenderFile(context.Background(), f.cfg, f.siteContext(), page, &buf))
	assert.Equal(t, body, buf.String())
}

func TestRenderFile_Missing(t *testing.T) {
	f := newAppFixture(t)

	var buf bytes.Buffer
	err := f.app.RenderFile(context.Background(), f.cfg, f.siteContext(), filepath.Join(f.root, "nope.html"), &buf)
	require.ErrorContains(t, err, domain.ErrPageReadFailed.Error())
}
