package ports

import "go.trai.ch/unifw/internal/core/domain"

// BuildRecordStore persists the record of the last successful build of each package
// in the state directory of a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a package.
	// Returns nil, nil if not found.
	Get(root domain.WorkspaceRoot, pkg string) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(root domain.WorkspaceRoot, record domain.BuildRecord) error
}
