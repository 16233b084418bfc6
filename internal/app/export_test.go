package app

var (
	IsSource   = isSource
	TemplateOf = templateOf
)
