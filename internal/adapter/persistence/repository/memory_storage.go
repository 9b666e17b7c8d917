package repository

import (
	"context"
	"sync"

	"salesdesk/internal/usecase/interfaces"
)

// MemoryStorage is a map-backed storage adapter. Values vanish with the
// process; it backs tests and the explicit "memory" backend.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

var _ interfaces.IStorageAdapter = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string][]byte{}}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
