package ports

import "go.trai.ch/unifw/internal/core/domain"

// ManifestLoader defines the interface for loading the build manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path, resolving relative paths against the workspace root.
	Load(path string) (*domain.Manifest, error)
}
