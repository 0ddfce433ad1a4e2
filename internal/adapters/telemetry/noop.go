// Package telemetry provides telemetry implementations that do not depend on
// a rendering backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/crucible/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

var _ ports.Telemetry = NoOp{}

// NewNoOp creates a new no-op telemetry.
func NewNoOp() NoOp {
	return NoOp{}
}

// Record returns a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards all output.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards all output.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoOpVertex) Complete(error) {}
