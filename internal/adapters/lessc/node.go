package lessc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lessco/internal/adapters/logger"
	"go.trai.ch/lessco/internal/core/ports"
)

// NodeID is the unique identifier for the Less engine Graft node.
const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})
}
