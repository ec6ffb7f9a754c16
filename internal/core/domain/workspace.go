package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultProjectName is the project file the compiler is pointed at.
	DefaultProjectName = "Pods.xcodeproj"

	// mergedDirName holds session outputs that must not live inside either build tree.
	mergedDirName = "build-merged"

	stateDirName = ".unifw"
)

// WorkspaceRoot is the directory that owns every path a session touches. It
// replaces any reliance on the process working directory.
type WorkspaceRoot string

// Path joins elem onto the root.
func (w WorkspaceRoot) Path(elem ...string) string {
	return filepath.Join(append([]string{string(w)}, elem...)...)
}

// BuildDir is the build-output directory of env.
func (w WorkspaceRoot) BuildDir(env Environment) string {
	return w.Path(env.BuildDirName())
}

// ProjectPath is the path of the project file.
func (w WorkspaceRoot) ProjectPath(name string) string {
	if name == "" {
		name = DefaultProjectName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return w.Path(name)
}

// MergedDir holds merged artifacts such as the bridging header.
func (w WorkspaceRoot) MergedDir() string {
	return w.Path(mergedDirName)
}

// WorkingDir is the per-platform area in which the output bundle is assembled.
func (w WorkspaceRoot) WorkingDir(platform Platform) string {
	return w.Path(string(platform))
}

// OutputBundle is the bundle assembled in the working area of platform.
func (w WorkspaceRoot) OutputBundle(platform Platform, spec *PackageSpec) string {
	return filepath.Join(w.WorkingDir(platform), spec.FrameworkName())
}

// MergedHeader is where the merged bridging header of target is written.
func (w WorkspaceRoot) MergedHeader(target string) string {
	return filepath.Join(w.MergedDir(), HeadersDirName, BridgingHeaderName(target))
}

// ValidateDestination rejects a delivery directory whose bundle would overlap
// the working bundle of platform or either build tree. Delivery removes the
// previous bundle first, so an overlap would destroy the assembled result.
func (w WorkspaceRoot) ValidateDestination(destDir string, platform Platform, spec *PackageSpec) error {
	if !filepath.IsAbs(destDir) {
		destDir = w.Path(destDir)
	}
	dst := filepath.Join(destDir, spec.FrameworkName())

	reserved := []string{
		w.OutputBundle(platform, spec),
		w.BuildDir(EnvironmentSimulator),
		w.BuildDir(EnvironmentDevice),
	}
	for _, area := range reserved {
		if within(dst, area) || within(area, dst) {
			err := zerr.With(zerr.Wrap(ErrInvalidManifest, "destination overlaps the assembly area"), "destination", dst)
			return zerr.With(err, "area", area)
		}
	}
	return nil
}

// within reports whether path is dir or lies beneath it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// StateDir holds persistent tool state such as build records.
func (w WorkspaceRoot) StateDir() string {
	return w.Path(stateDirName)
}

// BuildTree is the bundle produced by one compiler invocation.
type BuildTree struct {
	Environment Environment
	// Root is the build-output directory.
	Root string
	// Bundle is the <Name>.framework directory inside Root.
	Bundle string
}

// BuildTreeFor returns the build tree of env for the named package.
func (w WorkspaceRoot) BuildTreeFor(env Environment, spec *PackageSpec) BuildTree {
	root := w.BuildDir(env)
	return BuildTree{
		Environment: env,
		Root:        root,
		Bundle:      filepath.Join(root, spec.FrameworkName()),
	}
}

// Binary is the single-environment binary inside the tree's bundle.
func (t BuildTree) Binary(spec *PackageSpec) string {
	return filepath.Join(t.Bundle, spec.Name)
}

// BridgingHeader is the generated header of target inside the tree's bundle.
func (t BuildTree) BridgingHeader(target string) string {
	return filepath.Join(t.Bundle, HeadersDirName, BridgingHeaderName(target))
}

const (
	// HeadersDirName is the headers directory inside a framework bundle.
	HeadersDirName = "Headers"
	// CodeSignatureDirName is the signing metadata directory the build tool leaves in a bundle.
	CodeSignatureDirName = "_CodeSignature"
)

// BridgingHeaderName is the file name of the generated bridging header for target.
func BridgingHeaderName(target string) string {
	return target + "-Swift.h"
}
