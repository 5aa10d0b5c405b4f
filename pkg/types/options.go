package types

import (
	"log/slog"

	"github.com/joshuapare/veckit/alloc"
)

// Options controls container construction.
type Options[T any] struct {
	// Allocator supplies and resizes element storage.
	// If nil, a fresh alloc.Heap is used.
	Allocator alloc.Allocator[T]

	// Logger receives debug records for growth and disposal.
	// If nil, the package-wide logger (discarding by default) is used.
	Logger *slog.Logger

	// Name labels log records and violation reports for this container.
	// Optional.
	Name string
}
