package ports

import (
	"context"
	"io"

	"go.trai.ch/unifw/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of session stages.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Log(level domain.LogLevel, msg string)
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
