// Package document implements ports.Document over a rendered HTML page.
package document

import (
	"bytes"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TypeHTML is the document type of HTML pages.
const TypeHTML = "html"

var _ ports.Document = (*Page)(nil)

type headLink struct {
	href     string
	relation string
	attribs  map[string]string
}

// Page is an HTML page plus the head additions and rewrites collected while
// rendering it.
type Page struct {
	kind        string
	body        []byte
	stylesheets []string
	removed     map[string]bool
	links       []headLink
	scripts     []string
	customTags  []string
	rewrites    []func([]byte) []byte
}

// NewPage wraps body. Stylesheets linked from the page are registered.
func NewPage(kind string, body []byte) *Page {
	p := &Page{
		kind:    kind,
		body:    body,
		removed: make(map[string]bool),
	}
	if kind == TypeHTML {
		p.stylesheets = linkedStyleSheets(body)
	}
	return p
}

// ReadPage loads a page from disk. The type is taken from the file extension.
func ReadPage(path string) (*Page, error) {
	body, err := os.ReadFile(path) //nolint:gosec // path is resolved by the server
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPageReadFailed.Error()), "path", path)
	}
	return NewPage(TypeFromPath(path), body), nil
}

// TypeFromPath maps a file name to a document type.
func TypeFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "htm" || ext == "html" {
		return TypeHTML
	}
	return ext
}

// Type returns the document format.
func (p *Page) Type() string { return p.kind }

// StyleSheets lists the registered stylesheet URIs.
func (p *Page) StyleSheets() []string { return slices.Clone(p.stylesheets) }

// RemoveStyleSheet unregisters uri. Its link element is dropped on render.
func (p *Page) RemoveStyleSheet(uri string) {
	if !slices.Contains(p.stylesheets, uri) {
		return
	}
	p.stylesheets = slices.DeleteFunc(p.stylesheets, func(s string) bool { return s == uri })
	p.removed[uri] = true
}

// AddHeadLink adds a <link> element to the head.
func (p *Page) AddHeadLink(href, relation string, attribs map[string]string) {
	p.links = append(p.links, headLink{href: href, relation: relation, attribs: maps.Clone(attribs)})
}

// AddScriptDeclaration adds an inline script to the head.
func (p *Page) AddScriptDeclaration(content string) {
	p.scripts = append(p.scripts, content)
}

// AddCustomTag appends raw markup to the end of the head.
func (p *Page) AddCustomTag(markup string) {
	p.customTags = append(p.customTags, markup)
}

// OnAfterRender registers a rewrite applied to the rendered body.
func (p *Page) OnAfterRender(rewrite func(body []byte) []byte) {
	p.rewrites = append(p.rewrites, rewrite)
}

// Render produces the final page: unregistered stylesheet links are dropped,
// head additions are inserted before </head>, then rewrites run in order.
func (p *Page) Render() []byte {
	out := p.body
	if p.kind == TypeHTML {
		if len(p.removed) > 0 {
			out = removeLinks(out, func(href string) bool { return p.removed[href] })
		}
		out = injectHead(out, p.headMarkup())
	}
	for _, rewrite := range p.rewrites {
		out = rewrite(out)
	}
	return out
}

// WriteTo writes the rendered page to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Render())
	return int64(n), err
}

func (p *Page) headMarkup() string {
	var b strings.Builder
	for _, l := range p.links {
		b.WriteString(`<link href="` + html.EscapeString(l.href) + `" rel="` + html.EscapeString(l.relation) + `"`)
		for _, k := range slices.Sorted(maps.Keys(l.attribs)) {
			b.WriteString(" " + k + `="` + html.EscapeString(l.attribs[k]) + `"`)
		}
		b.WriteString(" />\n")
	}
	for _, s := range p.scripts {
		b.WriteString("<script type=\"text/javascript\">\n" + s + "\n</script>\n")
	}
	for _, tag := range p.customTags {
		b.WriteString(tag + "\n")
	}
	return b.String()
}

// RemoveStylesheetLink drops every <link> element whose href path ends with
// cssURI, ignoring any query string, together with the whitespace before it.
func RemoveStylesheetLink(body []byte, cssURI string) []byte {
	return removeLinks(body, func(href string) bool {
		path, _, _ := strings.Cut(href, "?")
		return strings.HasSuffix(path, cssURI)
	})
}

// removeLinks copies body token by token, leaving out link elements whose
// href satisfies drop.
func removeLinks(body []byte, drop func(href string) bool) []byte {
	var out bytes.Buffer
	out.Grow(len(body))

	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := z.Raw()

		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			// TagName lower-cases the buffer in place.
			raw = bytes.Clone(raw)
			if href, ok := linkHref(z); ok && drop(href) {
				out.Truncate(len(bytes.TrimRight(out.Bytes(), " \t\r\n")))
				continue
			}
		}
		out.Write(raw)
	}
	return out.Bytes()
}

// linkHref returns the href of the current tag when it is a <link>.
func linkHref(z *html.Tokenizer) (string, bool) {
	name, hasAttr := z.TagName()
	if atom.Lookup(name) != atom.Link || !hasAttr {
		return "", false
	}
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

// linkedStyleSheets lists the hrefs of <link rel="stylesheet"> elements.
func linkedStyleSheets(body []byte) []string {
	var sheets []string
	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return sheets
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, hasAttr := z.TagName()
		if atom.Lookup(name) != atom.Link || !hasAttr {
			continue
		}
		var href, rel string
		for more := true; more; {
			var key, val []byte
			key, val, more = z.TagAttr()
			switch string(key) {
			case "href":
				href = string(val)
			case "rel":
				rel = strings.ToLower(string(val))
			}
		}
		if rel == "stylesheet" && href != "" {
			sheets = append(sheets, href)
		}
	}
}

// injectHead inserts markup right before </head>, or at the start of the page
// when there is no head.
func injectHead(body []byte, markup string) []byte {
	if markup == "" {
		return body
	}
	idx := bytes.Index(bytes.ToLower(body), []byte("</head>"))
	if idx < 0 {
		return append([]byte(markup), body...)
	}
	out := make([]byte, 0, len(body)+len(markup))
	out = append(out, body[:idx]...)
	out = append(out, markup...)
	return append(out, body[idx:]...)
}
