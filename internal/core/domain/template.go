package domain

import (
	"slices"
	"strings"
)

// TemplateContext describes the template active for one render.
type TemplateContext struct {
	Client   ClientKind
	Template string
	// Variables are raw template parameters, sanitised before compilation.
	Variables map[string]string
}

// Contexts accepted by the save hook.
const (
	StyleSaveContext         = "com_templates.style"
	AdvancedStyleSaveContext = "com_advancedtemplates.style"
)

// Template parameters read by the save hook.
const (
	ParamUseLess     = "useLESS"
	ParamCSSCompress = "cssCompress"
	// VarBasePath is injected into every save-time compilation.
	VarBasePath = "basePath"
)

// SaveEvent is raised after an administrator stores template style settings.
type SaveEvent struct {
	Context  string
	StyleID  int
	Client   ClientKind
	Template string
	Params   map[string]string
}

// IsTemplateStyle reports whether the event came from a template style editor.
func (e SaveEvent) IsTemplateStyle() bool {
	return slices.Contains([]string{StyleSaveContext, AdvancedStyleSaveContext}, e.Context)
}

// UsesLess reports whether the style opted into Less compilation.
func (e SaveEvent) UsesLess() bool {
	return truthy(e.Params[ParamUseLess])
}

// Compressed reports whether the style asked for compressed output.
func (e SaveEvent) Compressed() bool {
	return truthy(e.Params[ParamCSSCompress])
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
