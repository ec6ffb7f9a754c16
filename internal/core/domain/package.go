package domain

import (
	"strings"

	"github.com/google/shlex"
	"go.trai.ch/zerr"
)

// DefaultLicenseFile is used when a package declares no license file.
const DefaultLicenseFile = "LICENSE"

// License is the license metadata of a package: a file path, inline text, or both.
type License struct {
	File string
	Text string
}

// FileOrDefault returns the declared license file, or DefaultLicenseFile.
func (l License) FileOrDefault() string {
	if l.File == "" {
		return DefaultLicenseFile
	}
	return l.File
}

// PackageSpec describes the package being turned into a framework bundle.
// It is supplied by the dependency model and never mutated here.
type PackageSpec struct {
	// Name is the package name; it also names the framework and its binary.
	Name string

	// Platforms lists every platform the package declares support for.
	Platforms []Platform

	// CompilerFlags holds the declared per-platform compiler flags.
	CompilerFlags map[Platform][]string

	// License is the package's license metadata.
	License License
}

// Validate checks that the spec names a package and declares platform.
func (s *PackageSpec) Validate(platform Platform) error {
	if strings.TrimSpace(s.Name) == "" {
		return zerr.Wrap(ErrInvalidManifest, "package name is empty")
	}
	if strings.ContainsAny(s.Name, `/\`) {
		return zerr.With(zerr.Wrap(ErrInvalidManifest, "package name contains a path separator"), "package", s.Name)
	}
	for _, p := range s.Platforms {
		if p == platform {
			return nil
		}
	}
	err := zerr.With(zerr.Wrap(ErrPlatformNotDeclared, "cannot build for platform"), "package", s.Name)
	return zerr.With(err, "platform", string(platform))
}

// BuildTarget returns the compiler target identifier for the package on platform.
// The platform suffix is applied only when the package supports more than one platform.
func (s *PackageSpec) BuildTarget(platform Platform) string {
	if len(s.Platforms) > 1 {
		return s.Name + "-" + platform.StringName()
	}
	return s.Name
}

// FrameworkName is the bundle directory name, e.g. "Foo.framework".
func (s *PackageSpec) FrameworkName() string {
	return s.Name + ".framework"
}

// Definitions returns the preprocessor definition arguments shared by both
// environment compiles: the inherited definitions followed by the package's
// declared compiler flags for platform. Each flag string is split into words
// with shell quoting rules, so -DNAME="a b" stays one argument.
func (s *PackageSpec) Definitions(platform Platform) ([]string, error) {
	flags := s.CompilerFlags[platform]
	defs := make([]string, 0, len(flags)+1)
	defs = append(defs, "GCC_PREPROCESSOR_DEFINITIONS=$(inherited)")
	for _, f := range flags {
		words, err := shlex.Split(f)
		if err != nil {
			err = zerr.With(zerr.Wrap(ErrInvalidManifest, "malformed compiler flags: "+err.Error()), "flags", f)
			return nil, zerr.With(err, "platform", string(platform))
		}
		defs = append(defs, words...)
	}
	return defs, nil
}
