// Package fs provides file system adapters for walking, copying, globbing and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk calls fn for every entry beneath root, root included, with its path relative to root.
// Entries whose base name matches one of ignores are skipped along with their contents.
// Symlinks are passed as entries and never followed. The walk stops at the first error,
// whether it comes from reading the tree or from fn, and returns it.
func (w *Walker) Walk(root string, ignores []string, fn func(rel string, d fs.DirEntry) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path)
		}

		if path != root && w.ignored(d.Name(), ignores) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(rel, d)
	})
}

// WalkFiles yields the regular files beneath root as paths relative to root.
// A walk failure is yielded once, with an empty path, and ends the sequence.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := w.Walk(root, ignores, func(rel string, d fs.DirEntry) error {
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(rel, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func (w *Walker) ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
