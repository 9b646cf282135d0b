// Package blobstore keeps raw import files on local disk under opaque refs.
// The pipeline never interprets a ref beyond handing it back for retrieval.
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is a directory-backed blob store.
type Store struct {
	dir string
}

// New creates the backing directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Store writes data under a fresh ref and returns it. When oldRef is
// non-empty the previous blob is removed first, so re-attaching an import
// does not leak files.
func (s *Store) Store(data []byte, oldRef string) (string, error) {
	if oldRef != "" {
		if err := s.Delete(oldRef); err != nil {
			return "", err
		}
	}
	ref := uuid.NewString() + ".csv"
	if err := os.WriteFile(s.path(ref), data, 0o644); err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}
	return ref, nil
}

// Fetch reads a blob back. The context lets callers bound the call.
func (s *Store) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(ref))
	if err != nil {
		return nil, fmt.Errorf("fetch blob %s: %w", ref, err)
	}
	return data, nil
}

// Delete removes a blob. A missing blob is not an error.
func (s *Store) Delete(ref string) error {
	if err := os.Remove(s.path(ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", ref, err)
	}
	return nil
}

func (s *Store) path(ref string) string {
	// Refs are uuid-based; Base strips anything path-like just in case.
	return filepath.Join(s.dir, filepath.Base(ref))
}
