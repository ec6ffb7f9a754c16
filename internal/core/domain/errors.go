package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFailed is matched by every BuildFailure.
	ErrBuildFailed = zerr.New("build failed")

	// ErrDegenerateInput is returned when the binary combiner is given no input binaries.
	ErrDegenerateInput = zerr.New("no input binaries to combine")

	// ErrMissingBuildTree is returned when a compile succeeded but its bundle directory is absent.
	ErrMissingBuildTree = zerr.New("build tree bundle not found")

	// ErrInvalidManifest is returned when the build manifest fails validation.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrUnknownPlatform is returned for a platform identifier with no known SDK mapping.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrPlatformNotDeclared is returned when the requested platform is not one the package supports.
	ErrPlatformNotDeclared = zerr.New("platform not declared by package")

	// ErrUnknownArchitecturePolicy is returned for an unrecognised architecture selection policy.
	ErrUnknownArchitecturePolicy = zerr.New("unknown architecture policy")
)
