package arch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/lipo" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unifw/internal/core/ports"
)

// NodeID is the unique identifier for the architecture selectors Graft node.
const NodeID graft.ID = "engine.arch"

func init() {
	graft.Register(graft.Node[Selectors]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lipo.InspectorNodeID},
		Run: func(ctx context.Context) (Selectors, error) {
			inspector, err := graft.Dep[ports.SliceInspector](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelectors(inspector), nil
		},
	})
}
