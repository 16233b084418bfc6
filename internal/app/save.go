package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
)

// Save runs the save hook: a template style that opted into Less is compiled
// to a per-style stylesheet. Failures leave the previous stylesheet in place
// and are reported as warnings.
func (a *App) Save(ctx context.Context, cfg *domain.Config, ev domain.SaveEvent) error {
	if !ev.IsTemplateStyle() || !ev.UsesLess() {
		return nil
	}

	dir := domain.TemplateDir(cfg.ClientRoot(ev.Client), ev.Template)
	input := filepath.Join(dir, filepath.FromSlash(domain.DefaultLessFile))
	output := filepath.Join(dir, "css", "template"+strconv.Itoa(ev.StyleID)+".css")

	if !readable(input) {
		a.logger.Debug(fmt.Sprintf("skipping style %d: %s", ev.StyleID, domain.ErrUnreadableInput.Error()))
		return nil
	}

	variables := domain.SanitizeVariables(ev.Params)
	variables[domain.VarBasePath] = `"` + cfg.BasePath(ev.Client) + `/"`

	format := domain.FormatPretty
	if ev.Compressed() {
		format = domain.FormatCompressed
	}

	req := &domain.CompilationRequest{
		InputPath:        input,
		OutputPath:       output,
		ImportPaths:      []string{filepath.Join(dir, domain.LessDirName)},
		Variables:        variables,
		Format:           format,
		PreserveComments: cfg.PreserveComments,
		Force:            true,
		Engine:           cfg.Engine,
	}
	fragments := []string{
		filepath.Join(dir, filepath.FromSlash(domain.CustomLessFile)),
		filepath.Join(dir, filepath.FromSlash(domain.CustomCSSFile)),
	}

	ctx, span := a.tracer.Start(ctx, "save",
		ports.WithAttribute("style_id", ev.StyleID),
		ports.WithAttribute("client", string(ev.Client)),
		ports.WithAttribute("template", ev.Template),
	)
	defer span.End()

	if _, err := a.pipeline.CompileTemplate(ctx, req, fragments); err != nil {
		span.RecordError(err)
		a.warn(fmt.Sprintf("failed to compile style %d", ev.StyleID), err)
		return nil
	}

	a.logger.Info(fmt.Sprintf("compiled %s", output))
	return nil
}
