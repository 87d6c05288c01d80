package cache

import (
	"context"
	"sync"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
)

// MemoryStore is a process-local KeyValueStore used when Redis is not configured.
type MemoryStore struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

var _ portssvc.KeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scopes: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, scope, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.scopes[scope][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scopes[scope]
	if !ok {
		s = make(map[string]string)
		m.scopes[scope] = s
	}
	s[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scopes[scope], key)
	return nil
}

func (m *MemoryStore) GetAll(_ context.Context, scope string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.scopes[scope]))
	for k, v := range m.scopes[scope] {
		out[k] = v
	}
	return out, nil
}
