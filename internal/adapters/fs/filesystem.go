package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o755

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	walker   *Walker
	resolver *Resolver
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(walker *Walker, resolver *Resolver) *FileSystem {
	return &FileSystem{walker: walker, resolver: resolver}
}

// Exists reports whether path is present. A dangling symlink counts as present.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ReadFile returns the content of the file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile creates or truncates path, creating parent directories as needed.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(path))
	}
	//nolint:gosec // Generated artifacts are world readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// RemoveAll deletes path and everything beneath it.
func (f *FileSystem) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// Glob returns the absolute paths under root matching pattern, sorted.
func (f *FileSystem) Glob(root, pattern string) ([]string, error) {
	return f.resolver.Glob(root, pattern)
}

// Copy copies the file, symlink or directory tree at src to dst. Existing
// files under dst are overwritten; other existing content is kept.
func (f *FileSystem) Copy(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", src)
	}
	if !info.IsDir() {
		return copyEntry(src, dst, info)
	}

	type dirTime struct {
		path  string
		mtime time.Time
	}
	var dirs []dirTime

	err = f.walker.Walk(src, nil, func(rel string, d iofs.DirEntry) error {
		from := filepath.Join(src, rel)
		to := filepath.Join(dst, rel)

		entryInfo, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", from)
		}

		if d.IsDir() {
			if err := os.MkdirAll(to, entryInfo.Mode().Perm()|0o700); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", to)
			}
			dirs = append(dirs, dirTime{path: to, mtime: entryInfo.ModTime()})
			return nil
		}

		return copyEntry(from, to, entryInfo)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy tree"), "path", src)
	}

	// Children first, so that creating entries does not bump a parent's mtime again.
	for _, dir := range slices.Backward(dirs) {
		if err := os.Chtimes(dir.path, dir.mtime, dir.mtime); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to set modification time"), "path", dir.path)
		}
	}

	return nil
}

func copyEntry(src, dst string, info iofs.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	if err := os.Remove(dst); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", dst)
	}

	if info.Mode()&iofs.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read symlink"), "path", src)
		}
		if err := os.Symlink(target, dst); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create symlink"), "path", dst)
		}
		return nil
	}

	if !info.Mode().IsRegular() {
		return zerr.With(zerr.New("unsupported file type"), "path", src)
	}

	if err := copyContent(src, dst, info.Mode().Perm()); err != nil {
		return err
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set modification time"), "path", dst)
	}
	return nil
}

func copyContent(src, dst string, perm iofs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}

	// OpenFile honours umask.
	if err := os.Chmod(dst, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", dst)
	}
	return nil
}
