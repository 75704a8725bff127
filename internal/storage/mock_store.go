package storage

import (
	"context"
	"fmt"
	"maps"
	"path"
	"slices"
	"sync"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
	calls MockCalls

	// FailWrite, when set, makes Write fail for the given path.
	FailWrite map[string]error
}

// MockCalls tracks method invocations for test verification.
type MockCalls struct {
	Exists int
	Read   int
	Write  int
}

// NewMockStore creates a store holding files. Every directory containing a
// seeded file exists, as does the root.
func NewMockStore(files map[string]string) *MockStore {
	m := &MockStore{
		files: make(map[string][]byte, len(files)),
		dirs:  map[string]struct{}{".": {}},
	}
	for p, content := range files {
		m.seed(path.Clean(p), []byte(content))
	}
	return m
}

func (m *MockStore) seed(p string, data []byte) {
	m.files[p] = data
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		m.dirs[dir] = struct{}{}
		if dir == "." {
			break
		}
	}
}

// Exists reports whether p was seeded or written.
func (m *MockStore) Exists(_ context.Context, p string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Exists++
	_, ok := m.files[path.Clean(p)]
	return ok, nil
}

// Read returns a copy of the stored content.
func (m *MockStore) Read(_ context.Context, p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Read++
	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return slices.Clone(data), nil
}

// Write stores data. The parent directory must already hold a file.
func (m *MockStore) Write(_ context.Context, p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Write++
	p = path.Clean(p)
	if err, ok := m.FailWrite[p]; ok {
		return err
	}
	if _, ok := m.dirs[path.Dir(p)]; !ok {
		return fmt.Errorf("write %s: directory %s does not exist", p, path.Dir(p))
	}
	m.files[p] = slices.Clone(data)
	return nil
}

// File returns the content at p as a string.
func (m *MockStore) File(p string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	return string(data), ok
}

// Paths lists every stored file, sorted.
func (m *MockStore) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Calls returns the invocation counters.
func (m *MockStore) Calls() MockCalls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}
