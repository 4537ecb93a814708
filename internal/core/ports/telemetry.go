package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records provisioning progress as a sequence of vertices.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for output attributed to this vertex.
	Stdout() io.Writer

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)

	// Cached marks the vertex as satisfied by a cache hit.
	Cached()
}
