package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provenv/internal/adapters/logger"
	"go.trai.ch/provenv/internal/core/ports"
)

// NodeID is the unique identifier for the pip installer node.
const NodeID graft.ID = "adapter.pip.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log), nil
		},
	})
}
