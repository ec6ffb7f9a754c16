package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/adapters/xcode"              //nolint:depguard // Wired in app layer
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/unifw/internal/engine/arch"
	"go.trai.ch/unifw/internal/engine/assembler"
	"go.trai.ch/unifw/internal/engine/header"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			xcode.NodeID,
			assembler.NodeID,
			arch.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			header.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	asm, err := graft.Dep[ports.BundleAssembler](ctx)
	if err != nil {
		return nil, err
	}

	selectors, err := graft.Dep[arch.Selectors](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, compiler, asm, selectors, store, hasher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	headers, err := graft.Dep[ports.HeaderMerger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Headers:   headers,
		Telemetry: telemetry,
	}, nil
}
