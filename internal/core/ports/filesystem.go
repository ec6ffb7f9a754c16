package ports

// FileSystem is the set of file operations the assembler performs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path is present, following no symlinks.
	Exists(path string) bool
	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile creates or truncates path, creating parent directories as needed.
	WriteFile(path string, data []byte) error
	// Copy copies a file or directory tree from src to dst.
	// Modes, modification times and symlinks are preserved.
	Copy(src, dst string) error
	// RemoveAll deletes path and everything beneath it. A missing path is not an error.
	RemoveAll(path string) error
	// Glob returns the absolute paths under root matching a doublestar pattern, sorted.
	Glob(root, pattern string) ([]string, error)
}
