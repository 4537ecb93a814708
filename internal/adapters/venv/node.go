package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provenv/internal/adapters/logger"
	"go.trai.ch/provenv/internal/core/ports"
)

const (
	// ToolNodeID is the unique identifier for the environment tool node.
	ToolNodeID graft.ID = "adapter.venv.tool"
	// ClonerNodeID is the unique identifier for the environment cloner node.
	ClonerNodeID graft.ID = "adapter.venv.cloner"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentTool]{
		ID:        ToolNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentTool, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(log, ""), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentCloner]{
		ID:        ClonerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentCloner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCloner(log), nil
		},
	})
}
