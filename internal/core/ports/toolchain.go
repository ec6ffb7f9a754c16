package ports

import (
	"context"

	"go.trai.ch/unifw/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// CompileRequest is one compiler invocation for one environment.
type CompileRequest struct {
	// Root is the workspace the build tool runs in.
	Root domain.WorkspaceRoot
	// Project is the project file name or absolute path.
	Project string
	// Configuration is the build configuration, e.g. "Release".
	Configuration string
	Platform      domain.Platform
	Environment   domain.Environment
	// Archs is the architecture hint passed to the build tool.
	Archs domain.ArchitectureSet
	// Definitions are the preprocessor definition arguments shared by both environments.
	Definitions []string
	// ExtraArgs are appended after the generated build settings.
	ExtraArgs []string
	// Env holds environment overrides for the build tool process.
	Env map[string]string
	// OutputDir receives the build tree.
	OutputDir string
	// Target is the compiler target identifier.
	Target string
}

// Compiler issues one clean release build of a target into an output directory.
type Compiler interface {
	// Compile fails with a *domain.BuildFailure when the build tool exits non-zero.
	Compile(ctx context.Context, req CompileRequest) error
}

// BinaryCombiner merges single-architecture binaries into one multi-architecture binary.
type BinaryCombiner interface {
	// Combine writes the union of all input slices to output.
	// It fails with domain.ErrDegenerateInput when inputs is empty.
	Combine(ctx context.Context, inputs []string, output string) error
}

// SliceInspector reports the architecture slices present in a binary.
type SliceInspector interface {
	Architectures(ctx context.Context, path string) ([]string, error)
}

// ArchitectureSelector decides the architecture hint passed to the compiler.
type ArchitectureSelector interface {
	// Select returns the architecture set for a package with the given vendored binaries.
	Select(ctx context.Context, vendored []string) (domain.ArchitectureSet, error)
}
