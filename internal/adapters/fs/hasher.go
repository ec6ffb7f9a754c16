package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

var treeHashIgnores = []string{domain.CodeSignatureDirName}

// Hasher provides hashing functionality for files and trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content as 16 hex digits.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	sum, err := h.sumFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// ComputeTreeHash computes a single hash over the relative paths and contents of
// every regular file beneath root. Code signatures are left out, so re-signing a
// bundle does not change its hash.
func (h *Hasher) ComputeTreeHash(root string) (string, error) {
	hasher := xxhash.New()

	for rel, err := range h.walker.WalkFiles(root, treeHashIgnores) {
		if err != nil {
			return "", err
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		sum, err := h.sumFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		_, _ = fmt.Fprintf(hasher, "%016x", sum)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) sumFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
