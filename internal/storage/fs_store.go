package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSStore is a Store over a directory of the local filesystem.
type FSStore struct {
	root string
	perm fs.FileMode
}

// NewFSStore creates a store rooted at root. Written files get mode 0644.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root, perm: 0o644}
}

// Root returns the directory the store operates on.
func (s *FSStore) Root() string { return s.root }

func (s *FSStore) resolve(p string) (string, error) {
	clean := path.Clean(filepath.ToSlash(p))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Exists reports whether a regular file exists at p.
func (s *FSStore) Exists(_ context.Context, p string) (bool, error) {
	full, err := s.resolve(p)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", full, err)
	}
	return info.Mode().IsRegular(), nil
}

// Read returns the content of p.
func (s *FSStore) Read(_ context.Context, p string) ([]byte, error) {
	full, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- full is confined to the store root by resolve
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, full)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", full, err)
	}
	return data, nil
}

// Write stores data at p through a temporary file in the same directory
// and a rename, so readers never observe a partially written file.
func (s *FSStore) Write(_ context.Context, p string, data []byte) error {
	full, err := s.resolve(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(full)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(full)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", full, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", full, err)
	}
	if err := tmp.Chmod(s.perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", full, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", full, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		return fmt.Errorf("rename into %s: %w", full, err)
	}
	return nil
}
