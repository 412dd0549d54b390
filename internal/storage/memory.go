package storage

import (
	"context"
	"sync"
)

// MemoryBackend is the in-process key/value tier. It is always available and
// serves as the last-resort fallback when every other tier is unusable.
// Data does not survive a restart.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
	}
}

// Read retrieves a document by key.
func (m *MemoryBackend) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Write stores a document under key.
func (m *MemoryBackend) Write(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[key] = stored
	return nil
}

// Delete removes a document. Used by the fallback wrapper to drop overlay
// entries once the primary tier recovers.
func (m *MemoryBackend) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
}

// Name returns the tier name.
func (m *MemoryBackend) Name() string { return "memory" }

// Close is a no-op for the memory tier.
func (m *MemoryBackend) Close() error { return nil }

var _ Backend = (*MemoryBackend)(nil)
