package cart

import "sync"

// Manager hands out one Store per user session. Stores are created
// lazily and live for the life of the process; carts are session
// state, not durable data.
type Manager struct {
	mu     sync.Mutex
	stores map[uint]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[uint]*Store)}
}

// For returns the user's cart store, creating it on first use.
func (m *Manager) For(userID uint) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[userID]
	if !ok {
		s = NewStore()
		m.stores[userID] = s
	}
	return s
}
