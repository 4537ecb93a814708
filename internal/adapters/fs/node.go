package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provenv/internal/core/ports"
)

const (
	// IndexNodeID is the unique identifier for the package index node.
	IndexNodeID graft.ID = "adapter.fs.index"
	// LineageNodeID is the unique identifier for the lineage log node.
	LineageNodeID graft.ID = "adapter.fs.lineage"
	// StampNodeID is the unique identifier for the success stamp node.
	StampNodeID graft.ID = "adapter.fs.stamp"
	// LinkerNodeID is the unique identifier for the target linker node.
	LinkerNodeID graft.ID = "adapter.fs.linker"
)

func init() {
	graft.Register(graft.Node[ports.IndexStore]{
		ID:        IndexNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexStore, error) {
			return NewIndexStore(), nil
		},
	})

	graft.Register(graft.Node[ports.LineageLog]{
		ID:        LineageNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LineageLog, error) {
			return NewLineageLog(), nil
		},
	})

	graft.Register(graft.Node[ports.StampStore]{
		ID:        StampNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StampStore, error) {
			return NewStampStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Linker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Linker, error) {
			return NewLinker(), nil
		},
	})
}
