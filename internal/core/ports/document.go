package ports

// Document is the page being rendered. It is the only way lessco touches the
// host page.
//
//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type Document interface {
	// Type returns the document format, for example "html".
	Type() string

	// StyleSheets lists the URIs of registered stylesheets.
	StyleSheets() []string

	// RemoveStyleSheet unregisters the stylesheet with exactly this URI.
	RemoveStyleSheet(uri string)

	// AddHeadLink adds a <link> element to the head.
	AddHeadLink(href, relation string, attribs map[string]string)

	// AddScriptDeclaration adds an inline script to the head.
	AddScriptDeclaration(content string)

	// AddCustomTag appends raw markup to the end of the head.
	AddCustomTag(markup string)

	// OnAfterRender registers a rewrite applied to the fully rendered body.
	OnAfterRender(rewrite func(body []byte) []byte)
}
