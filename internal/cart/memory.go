package cart

import (
	"context"
	"sync"
)

// MemoryStorage keeps carts in process memory. Used in tests and when no
// redis is configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]Item)}
}

func (m *MemoryStorage) Load(ctx context.Context, cartID string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]Item, len(m.carts[cartID]))
	copy(items, m.carts[cartID])
	return items, nil
}

func (m *MemoryStorage) Save(ctx context.Context, cartID string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]Item, len(items))
	copy(stored, items)
	m.carts[cartID] = stored
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, cartID)
	return nil
}
