package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/lessco/internal/adapters/watcher"
	"go.trai.ch/lessco/internal/core/domain"
)

// WatchOptions configures the Watch method.
type WatchOptions struct {
	CompileOptions
	// Window is the debounce window. Zero selects the watcher default.
	Window time.Duration
}

// Watch compiles the selected templates, then recompiles them whenever one of
// their sources changes. It returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, cfg *domain.Config, opts WatchOptions) error {
	if err := a.Compile(ctx, cfg, opts.CompileOptions); err != nil {
		a.warn("initial compilation failed", err)
	}

	root := filepath.Join(cfg.ClientRoot(opts.Client), domain.TemplatesDirName)
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	window := opts.Window
	if window == 0 {
		window = watcher.DefaultDebounceWindow
	}

	// Debounced batches may overlap; compilations of one watch run in turn.
	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		a.recompile(ctx, cfg, opts.CompileOptions, root, paths)
	})

	a.logger.Info(fmt.Sprintf("watching %s", root))
	for event := range a.watcher.Events() {
		if isSource(event.Path) {
			debouncer.Add(event.Path)
		}
	}
	debouncer.Flush()
	return nil
}

func (a *App) recompile(ctx context.Context, cfg *domain.Config, opts CompileOptions, root string, paths []string) {
	if ctx.Err() != nil {
		return
	}

	var names []string
	for _, path := range paths {
		name, ok := templateOf(root, path)
		if !ok || slices.Contains(names, name) {
			continue
		}
		if len(opts.Templates) > 0 && !slices.Contains(opts.Templates, name) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}

	a.logger.Debug(fmt.Sprintf("changed: %s", strings.Join(paths, ", ")))
	opts.Templates = names
	if err := a.Compile(ctx, cfg, opts); err != nil {
		a.warn("recompilation failed", err)
	}
}

// isSource reports whether path is a Less source. Compiled output and
// temporary files are ignored.
func isSource(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return filepath.Ext(base) == ".less"
}
