package ports

import (
	"context"

	"go.trai.ch/unifw/internal/core/domain"
)

// ProcessRunner runs one external process to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run blocks until the process exits and returns its exit code and combined output.
	// A non-zero exit is reported through the result, not the error; the error is
	// reserved for processes that could not be started.
	Run(ctx context.Context, cmd domain.CommandSpec) (domain.ProcessResult, error)
}
