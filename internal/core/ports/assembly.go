package ports

import (
	"context"

	"go.trai.ch/unifw/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=assembly.go -destination=mocks/mock_assembly.go -package=mocks

// FileAccessor exposes the precompiled artifacts shipped with a package.
type FileAccessor interface {
	VendoredStaticFrameworks() []string
	VendoredStaticLibraries() []string
}

// HeaderMerger combines the per-environment bridging headers.
type HeaderMerger interface {
	// Merge writes a conditional header built from the simulator and device headers to output.
	// It returns ok=false without error when either input is absent.
	Merge(simulatorHeader, deviceHeader, output string) (ok bool, err error)
}

// AssembleRequest carries everything the assembler needs to build one bundle.
type AssembleRequest struct {
	Root           domain.WorkspaceRoot
	Spec           *domain.PackageSpec
	Platform       domain.Platform
	Target         string
	Device         domain.BuildTree
	Simulator      domain.BuildTree
	Vendored       []string
	DestinationDir string
}

// BundleAssembler merges two build trees into one bundle and delivers it.
type BundleAssembler interface {
	// Assemble returns the path of the delivered bundle.
	Assemble(ctx context.Context, req AssembleRequest) (string, error)
}
