package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompileOptions configures the Compile method.
type CompileOptions struct {
	Client domain.ClientKind
	// Templates limits compilation to the named templates. Empty means every
	// template that has a Less source.
	Templates []string
	Variables map[string]string
}

// Compile runs the cache-gated compilation for templates of one client, as
// the render hook would, without a document.
func (a *App) Compile(ctx context.Context, cfg *domain.Config, opts CompileOptions) error {
	templates, err := a.templates(cfg, opts.Client, opts.Templates)
	if err != nil {
		return err
	}

	var errs error
	written := 0
	for _, name := range templates {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := a.autoCompile(ctx, cfg, Locate(cfg, opts.Client, name), opts.Variables)
		if err != nil {
			errs = errors.Join(errs, zerr.With(err, "template", name))
			continue
		}
		if res.Written {
			written++
		}
	}

	a.logger.Info(fmt.Sprintf("%d of %d stylesheets updated", written, len(templates)))
	return errs
}

// templates resolves template names to those with a readable Less source.
func (a *App) templates(cfg *domain.Config, client domain.ClientKind, names []string) ([]string, error) {
	lessFile := cfg.Paths(client).LessFile
	patterns := make([]string, 0, max(len(names), 1))
	if len(names) == 0 {
		patterns = append(patterns, domain.TemplatesDirName+"/*/"+lessFile)
	}
	for _, name := range names {
		patterns = append(patterns, domain.TemplatesDirName+"/"+name+"/"+lessFile)
	}

	root := cfg.ClientRoot(client)
	inputs, err := a.resolver.ResolveInputs(patterns, root)
	if err != nil {
		return nil, err
	}

	templatesDir := filepath.Join(root, domain.TemplatesDirName)
	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if name, ok := templateOf(templatesDir, input); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// templateOf returns the template directory name that path lies in.
func templateOf(templatesDir, path string) (string, bool) {
	rel, err := filepath.Rel(templatesDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	name, _, found := strings.Cut(filepath.ToSlash(rel), "/")
	if !found || name == "" {
		return "", false
	}
	return name, true
}
