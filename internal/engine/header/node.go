package header

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unifw/internal/core/ports"
)

// NodeID is the unique identifier for the header merger Graft node.
const NodeID graft.ID = "engine.header"

func init() {
	graft.Register(graft.Node[ports.HeaderMerger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.HeaderMerger, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewMerger(fsys), nil
		},
	})
}
