// Package telemetry holds telemetry adapters that need no backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that discards everything.
type NoOp struct{}

// NewNoOp creates a new NoOp.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx carrying a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a ports.Vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (v *NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(error) {}
