package domain

import (
	"path/filepath"
	"strings"
)

// ClientPaths holds the template-relative Less source and stylesheet of one client.
type ClientPaths struct {
	LessFile string
	CSSFile  string
}

// ClientSideOptions configures in-browser compilation.
type ClientSideOptions struct {
	Enabled bool
	// MediaDir is the site-relative directory holding less-*.js scripts.
	MediaDir string
	// Options is serialised into the inline `var less = ...` declaration.
	Options map[string]any
}

// EngineSettings configures the external Less compiler.
type EngineSettings struct {
	Binary string
	Args   []string
}

// Config is the resolved configuration consumed by lessco.
// All filesystem paths are absolute once produced by the config loader.
type Config struct {
	SiteRoot  string
	AdminRoot string
	TmpPath   string

	// SiteBase and AdminBase are URL path prefixes without trailing slash.
	SiteBase  string
	AdminBase string
	// SiteURL is the scheme and host used for absolute stylesheet URIs.
	SiteURL string

	Mode  ModeSelector
	Site  ClientPaths
	Admin ClientPaths

	Force            bool
	PreserveComments bool
	Compress         bool

	ClientSide ClientSideOptions
	Engine     EngineSettings
}

// DefaultConfig returns a configuration rooted at root with every default applied.
func DefaultConfig(root string) *Config {
	return &Config{
		SiteRoot:  root,
		AdminRoot: filepath.Join(root, DefaultAdminRoot),
		TmpPath:   filepath.Join(root, DefaultTmpPath),
		AdminBase: DefaultAdminBase,
		SiteURL:   DefaultSiteURL,
		Mode:      ModeFrontend,
		Site:      ClientPaths{LessFile: DefaultLessFile, CSSFile: DefaultCSSFile},
		Admin:     ClientPaths{LessFile: DefaultLessFile, CSSFile: DefaultCSSFile},
		ClientSide: ClientSideOptions{
			MediaDir: DefaultMediaDir,
			Options: map[string]any{
				"env":             "development",
				"dumpLineNumbers": "mediaquery",
			},
		},
		Engine: EngineSettings{Binary: DefaultEngineBinary},
	}
}

// Paths returns the file pair configured for the given client.
func (c *Config) Paths(kind ClientKind) ClientPaths {
	if kind == ClientAdmin {
		return c.Admin
	}
	return c.Site
}

// ClientRoot returns the filesystem root of the given client.
func (c *Config) ClientRoot(kind ClientKind) string {
	if kind == ClientAdmin {
		return c.AdminRoot
	}
	return c.SiteRoot
}

// BasePath returns the URL path prefix of the given client, without trailing slash.
func (c *Config) BasePath(kind ClientKind) string {
	if kind == ClientAdmin {
		return strings.TrimSuffix(c.AdminBase, "/")
	}
	return strings.TrimSuffix(c.SiteBase, "/")
}

// AbsoluteBase returns the absolute URL of the given client, with a trailing slash.
func (c *Config) AbsoluteBase(kind ClientKind) string {
	return strings.TrimSuffix(c.SiteURL, "/") + c.BasePath(kind) + "/"
}

// RenderMode selects how stylesheets are delivered on render.
func (c *Config) RenderMode() RenderMode {
	if c.ClientSide.Enabled {
		return RenderClientSide
	}
	return RenderServerCompiled
}

// Format returns the output formatting requested by the configuration.
func (c *Config) Format() FormatMode {
	if c.Compress {
		return FormatCompressed
	}
	return FormatPretty
}
