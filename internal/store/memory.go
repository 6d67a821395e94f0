package store

import (
	"context"
	"sync"
)

// MemoryDocuments keeps collections in process memory. Used by tests and as
// the default backend of the terminal client.
type MemoryDocuments struct {
	mu   sync.RWMutex
	data map[Collection][]byte
}

// NewMemoryDocuments creates an empty in-memory backend.
func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{data: make(map[Collection][]byte)}
}

// Read returns the stored document, or nil if the collection was never written.
func (m *MemoryDocuments) Read(_ context.Context, c Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[c], nil
}

// Write replaces the stored document.
func (m *MemoryDocuments) Write(_ context.Context, c Collection, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[c] = buf
	return nil
}

// Close is a no-op for the memory backend.
func (m *MemoryDocuments) Close() error {
	return nil
}
