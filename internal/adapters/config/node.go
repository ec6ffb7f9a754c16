package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/fs"
	"go.trai.ch/unifw/internal/adapters/logger"
	"go.trai.ch/unifw/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_loader"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, log), nil
		},
	})
}
