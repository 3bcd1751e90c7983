package memory

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/inventory"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
)

// StockItemRepository implements inventory.StockItemRepository on the shared store
type StockItemRepository struct {
	store *Store
}

// FindByID finds a stock record by its ID
func (r *StockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.stockItems[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cloneStockItem(item), nil
}

// FindAll finds all stock records in insertion order
func (r *StockItemRepository) FindAll(ctx context.Context) ([]inventory.StockItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]inventory.StockItem, 0, len(r.store.stockIDs))
	for _, id := range r.store.stockIDs {
		items = append(items, *cloneStockItem(r.store.stockItems[id]))
	}
	return items, nil
}

// Save creates or updates a stock record
func (r *StockItemRepository) Save(ctx context.Context, item *inventory.StockItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.stockItems[item.ID]; !ok {
		r.store.stockIDs = append(r.store.stockIDs, item.ID)
	}
	r.store.stockItems[item.ID] = cloneStockItem(item)
	return nil
}

// Delete removes a stock record
func (r *StockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.stockItems[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.store.stockItems, id)
	for i, existing := range r.store.stockIDs {
		if existing == id {
			r.store.stockIDs = append(r.store.stockIDs[:i], r.store.stockIDs[i+1:]...)
			break
		}
	}
	return nil
}

func cloneStockItem(item *inventory.StockItem) *inventory.StockItem {
	clone := *item
	return &clone
}
