package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lessco/internal/adapters/document"
	"go.trai.ch/lessco/internal/core/domain"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", "page.html"))
	require.NoError(t, err)
	return body
}

func TestNewPage_RegistersStyleSheets(t *testing.T) {
	page := document.NewPage(document.TypeHTML, readFixture(t))

	assert.Equal(t, "html", page.Type())
	assert.Equal(t, []string{
		"/templates/beez/css/template.css?12345",
		"/media/system/css/system.css",
	}, page.StyleSheets())
}

func TestNewPage_NonHTML(t *testing.T) {
	page := document.NewPage("json", []byte(`{"link":"<link rel=\"stylesheet\" href=\"a.css\">"}`))

	assert.Empty(t, page.StyleSheets())

	page.AddCustomTag("<script></script>")
	assert.Equal(t, `{"link":"<link rel=\"stylesheet\" href=\"a.css\">"}`, string(page.Render()))
}

func TestRemoveStylesheetLink(t *testing.T) {
	out := document.RemoveStylesheetLink(readFixture(t), "/templates/beez/css/template.css")

	g := goldie.New(t)
	g.Assert(t, "remove_link", out)
}

func TestRemoveStylesheetLink_NoMatch(t *testing.T) {
	body := readFixture(t)
	out := document.RemoveStylesheetLink(body, "/templates/protostar/css/template.css")
	assert.Equal(t, string(body), string(out))
}

func TestRemoveStylesheetLink_PreservesMarkup(t *testing.T) {
	body := []byte("<HEAD>\n  <LINK REL=\"stylesheet\" HREF=\"/a/css/template.css\">\n  <META charset=\"utf-8\">\n</HEAD>")
	out := document.RemoveStylesheetLink(body, "/a/css/template.css")
	assert.Equal(t, "<HEAD>\n  <META charset=\"utf-8\">\n</HEAD>", string(out))
}

func TestPage_RenderClientSide(t *testing.T) {
	page := document.NewPage(document.TypeHTML, readFixture(t))

	page.RemoveStyleSheet("/templates/beez/css/template.css?12345")
	page.AddHeadLink("templates/beez/less/template.less", "stylesheet/less", map[string]string{"type": "text/css"})
	page.AddScriptDeclaration(`var less = {"env":"development"};`)
	page.AddCustomTag(`<script src="/media/plg_less/js/less-1.3.3.js" type="text/javascript"></script>`)

	assert.Equal(t, []string{"/media/system/css/system.css"}, page.StyleSheets())

	g := goldie.New(t)
	g.Assert(t, "render_client_side", page.Render())
}

func TestPage_RemoveUnknownStyleSheet(t *testing.T) {
	body := readFixture(t)
	page := document.NewPage(document.TypeHTML, body)

	page.RemoveStyleSheet("/nope.css")
	assert.Len(t, page.StyleSheets(), 2)
	assert.Equal(t, string(body), string(page.Render()))
}

func TestPage_OnAfterRender(t *testing.T) {
	page := document.NewPage(document.TypeHTML, []byte("<html><head></head><body>a</body></html>"))

	page.OnAfterRender(func(body []byte) []byte { return bytes.ReplaceAll(body, []byte("a"), []byte("b")) })
	page.OnAfterRender(func(body []byte) []byte { return append(body, '!') })

	var buf bytes.Buffer
	_, err := page.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<html><head></head><body>b</body></html>!", buf.String())
}

func TestPage_InjectWithoutHead(t *testing.T) {
	page := document.NewPage(document.TypeHTML, []byte("<p>x</p>"))
	page.AddCustomTag("<meta name=\"x\">")

	assert.Equal(t, "<meta name=\"x\">\n<p>x</p>", string(page.Render()))
}

func TestReadPage(t *testing.T) {
	page, err := document.ReadPage(filepath.Join("testdata", "page.html"))
	require.NoError(t, err)
	assert.Equal(t, document.TypeHTML, page.Type())

	_, err = document.ReadPage(filepath.Join(t.TempDir(), "missing.html"))
	require.ErrorContains(t, err, domain.ErrPageReadFailed.Error())
}

func TestTypeFromPath(t *testing.T) {
	assert.Equal(t, "html", document.TypeFromPath("index.HTM"))
	assert.Equal(t, "html", document.TypeFromPath("/a/b/page.html"))
	assert.Equal(t, "css", document.TypeFromPath("template.css"))
	assert.Empty(t, document.TypeFromPath("README"))
}
