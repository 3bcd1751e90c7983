package memory

import (
	"context"
	"sync"

	"github.com/RayLight-369/rms/internal/domain/dining"
	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/google/uuid"
)

// Store is the single shared in-memory dataset. One RWMutex guards
// every collection so a compound order/table write is never observed
// half-applied; the dataset lives and dies with the process.
type Store struct {
	mu sync.RWMutex

	menuItems map[uuid.UUID]*menu.MenuItem
	menuIDs   []uuid.UUID // insertion order

	stockItems map[uuid.UUID]*inventory.StockItem
	stockIDs   []uuid.UUID

	orders   map[uuid.UUID]*dining.Order
	orderIDs []uuid.UUID // creation order
	orderSeq int

	tables map[int]*dining.Table
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		menuItems:  make(map[uuid.UUID]*menu.MenuItem),
		stockItems: make(map[uuid.UUID]*inventory.StockItem),
		orders:     make(map[uuid.UUID]*dining.Order),
		tables:     make(map[int]*dining.Table),
	}
}

// MenuItems returns the menu item repository backed by this store
func (s *Store) MenuItems() menu.MenuItemRepository {
	return &MenuItemRepository{store: s}
}

// StockItems returns the stock record repository backed by this store
func (s *Store) StockItems() inventory.StockItemRepository {
	return &StockItemRepository{store: s}
}

// Orders returns the order ledger repository backed by this store
func (s *Store) Orders() dining.OrderRepository {
	return &OrderRepository{store: s}
}

// Tables returns the table registry repository backed by this store
func (s *Store) Tables() dining.TableRepository {
	return &TableRepository{store: s}
}

// Transaction runs fn while holding the store's write lock. The
// repositories passed to fn operate without re-locking, so fn's writes
// to orders and tables land as one atomic step. Mirrors the closure
// shape of a database transaction; there is no rollback because fn is
// expected to validate before mutating.
func (s *Store) Transaction(ctx context.Context, fn func(repos dining.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(dining.Repositories{
		Orders: &OrderRepository{store: s, inTx: true},
		Tables: &TableRepository{store: s, inTx: true},
	})
}
