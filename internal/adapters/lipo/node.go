package lipo

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/shell"
	"go.trai.ch/unifw/internal/core/ports"
)

// ToolEnv overrides the lipo executable.
const ToolEnv = "UNIFW_LIPO"

const (
	// NodeID is the unique identifier for the shared lipo tool node.
	NodeID graft.ID = "adapter.lipo"
	// CombinerNodeID exposes the tool as a ports.BinaryCombiner.
	CombinerNodeID graft.ID = "adapter.lipo.combiner"
	// InspectorNodeID exposes the tool as a ports.SliceInspector.
	InspectorNodeID graft.ID = "adapter.lipo.inspector"
)

func init() {
	graft.Register(graft.Node[*Tool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Tool, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, os.Getenv(ToolEnv)), nil
		},
	})

	graft.Register(graft.Node[ports.BinaryCombiner]{
		ID:        CombinerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.BinaryCombiner, error) {
			return graft.Dep[*Tool](ctx)
		},
	})

	graft.Register(graft.Node[ports.SliceInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.SliceInspector, error) {
			return graft.Dep[*Tool](ctx)
		},
	})
}
