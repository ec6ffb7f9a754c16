// Package cas persists build records in the state directory of each workspace.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the name of the record file inside a workspace state directory.
const FileName = "records.json"

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using one flat JSON file per workspace.
type Store struct {
	mu     sync.Mutex
	tables map[string]map[string]domain.BuildRecord
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{tables: make(map[string]map[string]domain.BuildRecord)}
}

// Path returns the record file of root.
func Path(root domain.WorkspaceRoot) string {
	return filepath.Join(root.StateDir(), FileName)
}

// Get retrieves the record of pkg in root.
func (s *Store) Get(root domain.WorkspaceRoot, pkg string) (*domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.table(Path(root))
	if err != nil {
		return nil, err
	}

	record, ok := table[pkg]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores record under its package name and flushes the file of root.
func (s *Store) Put(root domain.WorkspaceRoot, record domain.BuildRecord) error {
	if record.Package == "" {
		return zerr.Wrap(domain.ErrInvalidManifest, "build record has no package name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := Path(root)
	table, err := s.table(path)
	if err != nil {
		return err
	}
	table[record.Package] = record

	return save(path, table)
}

func (s *Store) table(path string) (map[string]domain.BuildRecord, error) {
	if table, ok := s.tables[path]; ok {
		return table, nil
	}
	table, err := load(path)
	if err != nil {
		return nil, err
	}
	s.tables[path] = table
	return table, nil
}

func load(path string) (map[string]domain.BuildRecord, error) {
	table := make(map[string]domain.BuildRecord)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return table, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build record store"), "path", path)
	}

	if len(data) == 0 {
		return table, nil
	}

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build record store"), "path", path)
	}
	return table, nil
}

func save(path string, table map[string]domain.BuildRecord) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record store")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build record store")
	}

	//nolint:gosec // Path is derived from the workspace root
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build record store"), "path", path)
	}
	return nil
}
