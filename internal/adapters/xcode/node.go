package xcode

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/logger"
	"go.trai.ch/unifw/internal/adapters/shell"
	"go.trai.ch/unifw/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

// ToolEnv overrides the build tool executable.
const ToolEnv = "UNIFW_XCODEBUILD"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner, log, os.Getenv(ToolEnv)), nil
		},
	})
}
