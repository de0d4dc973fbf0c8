package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/waypoint/internal/adapters/logger"
	"go.trai.ch/waypoint/internal/core/ports"
)

// NodeID is the unique identifier for the network loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.NetworkLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.NetworkLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
