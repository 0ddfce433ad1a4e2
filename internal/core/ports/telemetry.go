package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a generation run as vertices, one per
// unit of work.
type Telemetry interface {
	// Record starts a vertex for one unit of work and returns a context
	// carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for progress output attributed to the vertex.
	Stdout() io.Writer

	// Stderr returns a writer for error output attributed to the vertex.
	Stderr() io.Writer

	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex returns a context carrying the vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext extracts the vertex from the context, if present.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
