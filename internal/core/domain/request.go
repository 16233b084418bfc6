package domain

// FormatMode selects the stylesheet formatting of the Less engine.
type FormatMode int

const (
	// FormatPretty emits indented, human-readable CSS.
	FormatPretty FormatMode = iota
	// FormatCompressed emits minified CSS.
	FormatCompressed
)

// String returns a short name of the mode.
func (f FormatMode) String() string {
	if f == FormatCompressed {
		return "compressed"
	}
	return "pretty"
}

// RenderMode selects how the stylesheet reaches the browser.
type RenderMode int

const (
	// RenderServerCompiled compiles on the server and links the CSS file.
	RenderServerCompiled RenderMode = iota
	// RenderClientSide ships the Less source plus an in-browser compiler.
	RenderClientSide
)

// String returns a short name of the mode.
func (r RenderMode) String() string {
	if r == RenderClientSide {
		return "client-side"
	}
	return "server-compiled"
}

// CompilationRequest describes one compile attempt. It is built fresh for every
// attempt and never persisted.
type CompilationRequest struct {
	InputPath  string
	OutputPath string
	// ImportPaths is searched in order when resolving @import.
	ImportPaths      []string
	Variables        map[string]string
	Format           FormatMode
	PreserveComments bool
	Force            bool
	// Engine selects the compiler binary and extra arguments.
	Engine EngineSettings
}

// EngineOptions is the subset of a request the Less engine needs.
type EngineOptions struct {
	// Filename names the source in engine diagnostics.
	Filename         string
	ImportPaths      []string
	Variables        map[string]string
	Format           FormatMode
	PreserveComments bool
	// Binary and Args override the engine defaults when set.
	Binary string
	Args   []string
}

// EngineOptions derives the engine invocation options from the request.
func (r *CompilationRequest) EngineOptions() EngineOptions {
	return EngineOptions{
		Filename:         r.InputPath,
		ImportPaths:      r.ImportPaths,
		Variables:        r.Variables,
		Format:           r.Format,
		PreserveComments: r.PreserveComments,
		Binary:           r.Engine.Binary,
		Args:             r.Engine.Args,
	}
}
