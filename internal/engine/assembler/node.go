package assembler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unifw/internal/adapters/lipo"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unifw/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/unifw/internal/engine/header"
)

// NodeID is the unique identifier for the assembler Graft node.
const NodeID graft.ID = "engine.assembler"

func init() {
	graft.Register(graft.Node[ports.BundleAssembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			lipo.CombinerNodeID,
			header.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.BundleAssembler, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			combiner, err := graft.Dep[ports.BinaryCombiner](ctx)
			if err != nil {
				return nil, err
			}

			headers, err := graft.Dep[ports.HeaderMerger](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, combiner, headers, log), nil
		},
	})
}
