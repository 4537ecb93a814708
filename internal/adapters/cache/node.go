package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provenv/internal/adapters/fs"
	"go.trai.ch/provenv/internal/adapters/logger"
	"go.trai.ch/provenv/internal/core/ports"
)

// NodeID is the unique identifier for the cache selector node.
const NodeID graft.ID = "adapter.cache.selector"

func init() {
	graft.Register(graft.Node[ports.CacheSelector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.IndexNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheSelector, error) {
			index, err := graft.Dep[ports.IndexStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(index, log), nil
		},
	})
}
