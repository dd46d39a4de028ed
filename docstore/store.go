package docstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a document does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting exported documents. Documents are
// written and read whole; there is no partial update.
type Store interface {
	// Put writes a document atomically, replacing any previous version.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads a document. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all document names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
