package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/lessco/internal/adapters/document"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/lessco/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// Render runs the render hook for one page. Subsystem failures are reported
// as warnings and never returned; the page keeps its previous stylesheet.
func (a *App) Render(ctx context.Context, cfg *domain.Config, tc domain.TemplateContext, doc ports.Document) error {
	if doc == nil {
		return domain.ErrNilDocument
	}
	if !cfg.Mode.Covers(tc.Client) {
		return nil
	}

	loc := Locate(cfg, tc.Client, tc.Template)
	if !readable(loc.Input) {
		a.logger.Debug(fmt.Sprintf("skipping %s: %s", tc.Template, domain.ErrUnreadableInput.Error()))
		return nil
	}

	mode := cfg.RenderMode()
	ctx, span := a.tracer.Start(ctx, "render",
		ports.WithAttribute("render_id", uuid.NewString()),
		ports.WithAttribute("client", string(tc.Client)),
		ports.WithAttribute("template", tc.Template),
		ports.WithAttribute("mode", mode.String()),
	)
	defer span.End()

	if mode == domain.RenderClientSide {
		a.renderClientSide(cfg, loc, doc)
		return nil
	}

	if _, err := a.autoCompile(ctx, cfg, loc, tc.Variables); err != nil {
		span.RecordError(err)
		a.warn(fmt.Sprintf("failed to compile %s", tc.Template), err)
	}
	return nil
}

// RenderFile renders the HTML page at path and writes the result to w.
func (a *App) RenderFile(ctx context.Context, cfg *domain.Config, tc domain.TemplateContext, path string, w io.Writer) error {
	page, err := document.ReadPage(path)
	if err != nil {
		return err
	}
	if err := a.Render(ctx, cfg, tc, page); err != nil {
		return err
	}
	if _, err := page.WriteTo(w); err != nil {
		return zerr.Wrap(err, "failed to write rendered page")
	}
	return nil
}

func (a *App) autoCompile(
	ctx context.Context,
	cfg *domain.Config,
	loc Location,
	variables map[string]string,
) (compiler.Result, error) {
	job := compiler.Job{
		Request: domain.CompilationRequest{
			InputPath:        loc.Input,
			OutputPath:       loc.Output,
			ImportPaths:      []string{filepath.Dir(loc.Input)},
			Variables:        domain.SanitizeVariables(variables),
			Format:           cfg.Format(),
			PreserveComments: cfg.PreserveComments,
			Force:            cfg.Force,
			Engine:           cfg.Engine,
		},
		CacheDir: cfg.TmpPath,
		CacheKey: loc.CacheKey,
		Client:   loc.Client,
		Template: loc.Template,
	}

	res, err := a.pipeline.AutoCompile(ctx, job)
	if err != nil {
		return res, err
	}
	switch {
	case res.Restored:
		a.logger.Debug(fmt.Sprintf("restored %s from cache", loc.Output))
	case res.Written:
		a.logger.Debug(fmt.Sprintf("compiled %s", loc.Output))
	}
	return res, nil
}

func (a *App) warn(msg string, err error) {
	a.logger.Warn(msg + ": " + err.Error())
}
