package memory

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/menu"
	"github.com/RayLight-369/rms/internal/domain/shared"
	"github.com/google/uuid"
)

// MenuItemRepository implements menu.MenuItemRepository on the shared store
type MenuItemRepository struct {
	store *Store
}

// FindByID finds a menu item by its ID
func (r *MenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*menu.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.menuItems[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cloneMenuItem(item), nil
}

// FindAll finds all menu items in insertion order
func (r *MenuItemRepository) FindAll(ctx context.Context) ([]menu.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]menu.MenuItem, 0, len(r.store.menuIDs))
	for _, id := range r.store.menuIDs {
		items = append(items, *cloneMenuItem(r.store.menuItems[id]))
	}
	return items, nil
}

// FindActive finds all active menu items
func (r *MenuItemRepository) FindActive(ctx context.Context) ([]menu.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]menu.MenuItem, 0)
	for _, id := range r.store.menuIDs {
		if item := r.store.menuItems[id]; item.IsActive {
			items = append(items, *cloneMenuItem(item))
		}
	}
	return items, nil
}

// FindByCategory finds all menu items in a category
func (r *MenuItemRepository) FindByCategory(ctx context.Context, category menu.Category) ([]menu.MenuItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]menu.MenuItem, 0)
	for _, id := range r.store.menuIDs {
		if item := r.store.menuItems[id]; item.Category == category {
			items = append(items, *cloneMenuItem(item))
		}
	}
	return items, nil
}

// Save creates or updates a menu item
func (r *MenuItemRepository) Save(ctx context.Context, item *menu.MenuItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.menuItems[item.ID]; !ok {
		r.store.menuIDs = append(r.store.menuIDs, item.ID)
	}
	r.store.menuItems[item.ID] = cloneMenuItem(item)
	return nil
}

// Delete removes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.menuItems[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.store.menuItems, id)
	for i, existing := range r.store.menuIDs {
		if existing == id {
			r.store.menuIDs = append(r.store.menuIDs[:i], r.store.menuIDs[i+1:]...)
			break
		}
	}
	return nil
}

// cloneMenuItem copies an item so callers cannot mutate store state
// without going through Save
func cloneMenuItem(item *menu.MenuItem) *menu.MenuItem {
	clone := *item
	return &clone
}
