// Package storage reads and writes documents below the content root.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrOutsideRoot is returned for paths that would resolve outside the root.
var ErrOutsideRoot = errors.New("path resolves outside the content root")

// Store is the file collaborator of a generation run. Paths are relative to
// the store's root and slash-separated.
type Store interface {
	// Exists reports whether a regular file exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Read returns the file content. Missing files yield ErrNotFound.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the file at path. The containing directory must exist.
	Write(ctx context.Context, path string, data []byte) error
}
