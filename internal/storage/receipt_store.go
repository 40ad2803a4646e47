// Package storage holds the pending-receipt slot: a staging area that
// keeps at most one uploaded file at a time. Storing a new receipt clears
// whatever was there before; the extraction pipeline consumes whatever is
// present when it runs.
package storage

import (
	"context"
	"io"
)

type ReceiptStore interface {
	// Put clears the slot and stores the file under its base name.
	Put(ctx context.Context, name string, r io.Reader) error
	// List returns the names of all pending files, sorted.
	List(ctx context.Context) ([]string, error)
	// Get returns the stored file's contents.
	Get(ctx context.Context, name string) ([]byte, error)
	// Clear removes every pending file.
	Clear(ctx context.Context) error
}
