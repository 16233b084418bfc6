package app

import (
	"os"
	"path/filepath"

	"go.trai.ch/lessco/internal/core/domain"
)

// Location holds every path derived for one client and template.
type Location struct {
	Client      domain.ClientKind
	Template    string
	TemplateDir string
	// LessFile and CSSFile are relative to TemplateDir.
	LessFile string
	CSSFile  string
	Input    string
	Output   string
	CacheKey string
}

// Locate derives the input, output and cache key of a template.
func Locate(cfg *domain.Config, client domain.ClientKind, template string) Location {
	paths := cfg.Paths(client)
	dir := domain.TemplateDir(cfg.ClientRoot(client), template)
	input := filepath.Join(dir, filepath.FromSlash(paths.LessFile))
	return Location{
		Client:      client,
		Template:    template,
		TemplateDir: dir,
		LessFile:    paths.LessFile,
		CSSFile:     paths.CSSFile,
		Input:       input,
		Output:      filepath.Join(dir, filepath.FromSlash(paths.CSSFile)),
		CacheKey:    domain.CacheKey(client, template, input),
	}
}

// TemplateURI returns the root-relative URI of a template-relative file.
func (l Location) TemplateURI(file string) string {
	return domain.TemplateURI(l.Template) + file
}

// readable reports whether path is a regular file that can be opened.
func readable(path string) bool {
	f, err := os.Open(path) //nolint:gosec // paths are derived from configuration
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
