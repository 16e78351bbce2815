package storage

import (
	"context"
	"io"
)

// FileStorage archives generated documents (payslips, board exports) so
// past months can be re-served without recomputing them.
type FileStorage interface {
	// Save writes a file and returns the stored path/key
	Save(ctx context.Context, file io.Reader, path string) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error
}
