package store

import "sync"

// MemoryBackend keeps snapshots in process memory. Used by tests and as the
// zero-configuration default.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Load returns the stored snapshot for a collection
func (b *MemoryBackend) Load(collection string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[collection]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, true, nil
}

// Save replaces the stored snapshot for a collection
func (b *MemoryBackend) Save(collection string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	b.data[collection] = copied
	return nil
}
