package provision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provenv/internal/adapters/cache"
	"go.trai.ch/provenv/internal/adapters/fs"
	"go.trai.ch/provenv/internal/adapters/logger"
	"go.trai.ch/provenv/internal/adapters/pip"
	"go.trai.ch/provenv/internal/adapters/telemetry/progrock"
	"go.trai.ch/provenv/internal/adapters/venv"
	"go.trai.ch/provenv/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner engine node.
const NodeID graft.ID = "engine.provision"

func init() {
	graft.Register(graft.Node[*Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.IndexNodeID,
			fs.LineageNodeID,
			fs.StampNodeID,
			fs.LinkerNodeID,
			pip.NodeID,
			venv.ToolNodeID,
			venv.ClonerNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Provisioner, error) {
	selector, err := graft.Dep[ports.CacheSelector](ctx)
	if err != nil {
		return nil, err
	}
	index, err := graft.Dep[ports.IndexStore](ctx)
	if err != nil {
		return nil, err
	}
	lineage, err := graft.Dep[ports.LineageLog](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	envTool, err := graft.Dep[ports.EnvironmentTool](ctx)
	if err != nil {
		return nil, err
	}
	cloner, err := graft.Dep[ports.EnvironmentCloner](ctx)
	if err != nil {
		return nil, err
	}
	stamps, err := graft.Dep[ports.StampStore](ctx)
	if err != nil {
		return nil, err
	}
	linker, err := graft.Dep[ports.Linker](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(selector, index, lineage, installer, envTool, cloner, stamps, linker, log, telemetry), nil
}
