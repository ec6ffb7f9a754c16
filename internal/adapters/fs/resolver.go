package fs

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

// Resolver expands doublestar patterns relative to a root directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob returns the absolute paths under root matching pattern, sorted.
// No match is not an error.
func (r *Resolver) Glob(root, pattern string) ([]string, error) {
	return r.Resolve(root, []string{pattern})
}

// Resolve expands every pattern under root and returns the union of matches,
// sorted and without duplicates. Absolute patterns are matched from their own
// directory prefix.
func (r *Resolver) Resolve(root string, patterns []string) ([]string, error) {
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		base, rel := root, pattern
		if filepath.IsAbs(pattern) {
			base, rel = doublestar.SplitPattern(filepath.ToSlash(pattern))
		}
		rel = filepath.ToSlash(rel)

		if !doublestar.ValidatePattern(rel) {
			return nil, zerr.With(zerr.New("invalid glob pattern"), "pattern", pattern)
		}

		matches, err := doublestar.Glob(os.DirFS(base), rel)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}

		for _, match := range matches {
			unique[filepath.Join(base, filepath.FromSlash(match))] = struct{}{}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}
