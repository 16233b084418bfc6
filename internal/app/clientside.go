package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lessco/internal/adapters/document"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

// renderClientSide replaces the compiled stylesheet with the Less source and
// the in-browser compiler. Only HTML documents are touched.
func (a *App) renderClientSide(cfg *domain.Config, loc Location, doc ports.Document) {
	if doc.Type() != document.TypeHTML {
		return
	}

	lessURI := loc.TemplateURI(loc.LessFile)
	cssURI := loc.TemplateURI(loc.CSSFile)

	options, err := json.Marshal(cfg.ClientSide.Options)
	if err != nil {
		a.warn("failed to encode client-side options", err)
		return
	}

	doc.AddHeadLink(lessURI, "stylesheet/less", map[string]string{"type": "text/css"})
	doc.AddScriptDeclaration("var less = " + string(options) + ";")

	asset, err := clientAsset(filepath.Join(cfg.SiteRoot, filepath.FromSlash(cfg.ClientSide.MediaDir)))
	if err != nil {
		a.warn("client-side compilation disabled", err)
		return
	}

	src := cfg.BasePath(domain.ClientSite) + "/" + cfg.ClientSide.MediaDir + "/" + asset
	doc.AddCustomTag(fmt.Sprintf(`<script src="%s" type="text/javascript"></script>`, src))

	if removeRegistered(doc, []string{
		cssURI,
		cfg.BasePath(loc.Client) + "/" + cssURI,
		cfg.AbsoluteBase(loc.Client) + cssURI,
	}) {
		return
	}

	linked := cfg.BasePath(loc.Client) + "/" + cssURI
	doc.OnAfterRender(func(body []byte) []byte {
		return document.RemoveStylesheetLink(body, linked)
	})
}

// clientAsset returns the name of the newest less-*.js script in dir, judged
// by lexical order of the file names.
func clientAsset(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, domain.ClientAssetPattern))
	if err != nil || len(matches) == 0 {
		return "", zerr.With(domain.ErrClientAssetNotFound, "dir", dir)
	}
	return filepath.Base(slices.Max(matches)), nil
}

// removeRegistered unregisters the first stylesheet starting with one of the
// lookups, trying lookups in order.
func removeRegistered(doc ports.Document, lookups []string) bool {
	registered := doc.StyleSheets()
	for _, lookup := range lookups {
		for _, uri := range registered {
			if strings.HasPrefix(uri, lookup) {
				doc.RemoveStyleSheet(uri)
				return true
			}
		}
	}
	return false
}
