package ports

// Hasher fingerprints files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns a hex digest of the file content.
	ComputeFileHash(path string) (string, error)
	// ComputeTreeHash returns a hex digest over the relative paths and contents of a directory tree.
	ComputeTreeHash(root string) (string, error)
}
