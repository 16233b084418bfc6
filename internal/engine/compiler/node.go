package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lessco/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lessco/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lessco/internal/adapters/lessc"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lessco/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lessco/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lessco/internal/core/ports"
)

// NodeID is the unique identifier for the compilation pipeline Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			fs.HasherNodeID,
			lessc.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[ports.Engine](ctx)
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

			return NewPipeline(store, hasher, engine, tracer, log), nil
		},
	})
}
