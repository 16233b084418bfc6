package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lessco/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/lessco/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compiler.NodeID,
			cas.NodeID,
			fs.ResolverNodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	pipeline, err := graft.Dep[*compiler.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, pipeline, store, resolver, w, tracer, log), nil
}
