// Package config provides the manifest loader for unifw.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the manifest looked up in the workspace root.
	Filename = "unifw.yaml"

	// DefaultSourceDir receives the assembled bundle.
	DefaultSourceDir = "dist"
	// DefaultConfiguration is the build configuration compiled when none is given.
	DefaultConfiguration = "Release"

	frameworkExt = ".framework"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fs ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fs, logger: logger}
}

// Load reads the manifest at path. The directory containing it is the workspace root.
// If path is a directory, Filename is looked up inside it.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "path", path)
	}
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		abs = filepath.Join(abs, Filename)
	}

	data, err := l.fs.ReadFile(abs)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Manifestfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, err.Error()), "path", abs)
	}

	manifest, err := l.build(domain.WorkspaceRoot(filepath.Dir(abs)), &file)
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}
	return manifest, nil
}

func (l *Loader) build(root domain.WorkspaceRoot, file *Manifestfile) (*domain.Manifest, error) {
	spec := domain.PackageSpec{
		Name: strings.TrimSpace(file.Package.Name),
		License: domain.License{
			File: file.Package.License.File,
			Text: file.Package.License.Text,
		},
	}
	for _, p := range file.Package.Platforms {
		platform := domain.NormalizePlatform(p)
		if !slices.Contains(spec.Platforms, platform) {
			spec.Platforms = append(spec.Platforms, platform)
		}
	}
	if len(file.Package.CompilerFlags) > 0 {
		spec.CompilerFlags = make(map[domain.Platform][]string, len(file.Package.CompilerFlags))
		for p, flags := range file.Package.CompilerFlags {
			platform := domain.NormalizePlatform(p)
			spec.CompilerFlags[platform] = append(spec.CompilerFlags[platform], flags...)
		}
	}

	platform := domain.NormalizePlatform(file.Platform)
	if platform == "" && len(spec.Platforms) == 1 {
		platform = spec.Platforms[0]
	}
	if platform == "" {
		return nil, zerr.Wrap(domain.ErrInvalidManifest, "no platform selected")
	}
	if err := platform.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(platform); err != nil {
		return nil, err
	}

	policy := domain.ArchitecturePolicy(strings.ToLower(strings.TrimSpace(file.Architectures)))
	switch policy {
	case "":
		policy = domain.ArchitecturePolicyFixed
	case domain.ArchitecturePolicyFixed, domain.ArchitecturePolicyIntersection:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownArchitecturePolicy, "invalid architectures"),
			"architectures", file.Architectures)
	}

	for key := range file.Environment {
		if key == "" || strings.ContainsAny(key, "= ") {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "invalid environment variable name"), "name", key)
		}
	}

	vendored, err := l.resolveVendored(root, file.Vendored)
	if err != nil {
		return nil, err
	}

	useFramework := true
	if file.UseFramework != nil {
		useFramework = *file.UseFramework
	}

	return &domain.Manifest{
		Root:          root,
		Spec:          spec,
		Platform:      platform,
		SourceDir:     orDefault(file.SourceDir, DefaultSourceDir),
		UseFramework:  useFramework,
		Project:       orDefault(file.Project, domain.DefaultProjectName),
		Configuration: orDefault(file.Configuration, DefaultConfiguration),
		Architectures: policy,
		ExtraArgs:     file.ExtraArgs,
		Environment:   file.Environment,
		Vendored:      vendored,
	}, nil
}

func (l *Loader) resolveVendored(root domain.WorkspaceRoot, dto VendoredDTO) (domain.VendoredFiles, error) {
	frameworks, err := l.glob(root, dto.Frameworks)
	if err != nil {
		return domain.VendoredFiles{}, err
	}
	for i, match := range frameworks {
		if strings.HasSuffix(match, frameworkExt) {
			frameworks[i] = filepath.Join(match, strings.TrimSuffix(filepath.Base(match), frameworkExt))
		}
	}

	libraries, err := l.glob(root, dto.Libraries)
	if err != nil {
		return domain.VendoredFiles{}, err
	}

	return domain.VendoredFiles{Frameworks: frameworks, Libraries: libraries}, nil
}

func (l *Loader) glob(root domain.WorkspaceRoot, patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		matches, err := l.fs.Glob(string(root), pattern)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve vendored files")
		}
		if len(matches) == 0 {
			l.logger.Warn("vendored pattern matched nothing: " + pattern)
		}
		for _, match := range matches {
			if !slices.Contains(out, match) {
				out = append(out, match)
			}
		}
	}
	return out, nil
}

func orDefault(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}
