package app

import (
	"context"

	"go.trai.ch/lessco/internal/adapters/httpserver"
	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// ServeOptions configures the Serve method.
type ServeOptions struct {
	Addr string
	// Context is the template every served page is rendered with.
	Context domain.TemplateContext
	// Watch recompiles the template in the background while serving.
	Watch bool
}

// Serve runs a preview server for the site root until ctx is cancelled.
func (a *App) Serve(ctx context.Context, cfg *domain.Config, opts ServeOptions) error {
	srv := httpserver.New(cfg.SiteRoot, func(ctx context.Context, doc ports.Document) error {
		return a.Render(ctx, cfg, opts.Context, doc)
	}, a.logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, opts.Addr)
	})

	if opts.Watch {
		g.Go(func() error {
			return a.Watch(ctx, cfg, WatchOptions{
				CompileOptions: CompileOptions{
					Client:    opts.Context.Client,
					Templates: []string{opts.Context.Template},
					Variables: opts.Context.Variables,
				},
			})
		})
	}

	return g.Wait()
}
